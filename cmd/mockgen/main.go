package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"lotto-mcp/cmd/mockgen/engine"
	"lotto-mcp/internal/lottery"
)

func main() {
	lotto := flag.String("lotto", string(lottery.Eurojackpot), "Game type to generate draws for")
	scenario := flag.String("scenario", engine.ScenarioFair, "Scenario to generate: fair, hot, streaky, weekday")
	target := flag.Int("target", 7, "Number biased by the hot, streaky and weekday scenarios")
	outDir := flag.String("out", "./draws", "Draws directory to write into")
	count := flag.Int("count", 500, "Number of draws to generate")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		LottoType: lottery.Type(*lotto),
		Scenario:  *scenario,
		Target:    *target,
		Count:     *count,
		Now:       time.Now(),
		Seed:      *seed,
	}

	fmt.Printf("Generating scenario '%s' for %s (Target: %d, Count: %d) to %s...\n", cfg.Scenario, cfg.LottoType, cfg.Target, cfg.Count, *outDir)

	list, err := engine.Generate(cfg)
	if err != nil {
		fmt.Printf("Failed to generate draws: %v\n", err)
		os.Exit(1)
	}

	if err := engine.Save(*outDir, list); err != nil {
		fmt.Printf("Failed to save mock data: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
