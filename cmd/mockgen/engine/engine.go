package engine

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"lotto-mcp/internal/draws"
	"lotto-mcp/internal/lottery"
)

const (
	ScenarioFair    = "fair"
	ScenarioHot     = "hot"
	ScenarioStreaky = "streaky"
	ScenarioWeekday = "weekday"
)

type GeneratorConfig struct {
	LottoType lottery.Type
	Scenario  string
	// Target is the number the scenario biases; ignored for fair.
	Target int
	Count  int
	// Weekdays are the draw days, Tuesday and Friday when empty.
	Weekdays []time.Weekday
	Now      time.Time
	Seed     int64
}

// Generate produces Count chronological draws ending on or before cfg.Now.
func Generate(cfg GeneratorConfig) ([]draws.Draw, error) {
	game, err := lottery.Lookup(cfg.LottoType)
	if err != nil {
		return nil, err
	}
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	if len(cfg.Weekdays) == 0 {
		cfg.Weekdays = []time.Weekday{time.Tuesday, time.Friday}
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	switch cfg.Scenario {
	case "", ScenarioFair, ScenarioHot, ScenarioStreaky, ScenarioWeekday:
	default:
		return nil, fmt.Errorf("unknown scenario %q", cfg.Scenario)
	}
	if cfg.Scenario != "" && cfg.Scenario != ScenarioFair && !game.Primary.Range.Contains(cfg.Target) {
		return nil, fmt.Errorf("target %d outside %d-%d", cfg.Target, game.Primary.Range.Min, game.Primary.Range.Max)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	dates := drawDates(cfg.Now, cfg.Weekdays, cfg.Count)

	out := make([]draws.Draw, 0, len(dates))
	prevHit := false
	for i, date := range dates {
		var results []draws.Result
		if game.Positional {
			results = positionalResults(game.Primary, rng)
		} else {
			primary := sample(game.Primary, rng)
			switch cfg.Scenario {
			case ScenarioHot:
				// Roughly triples the natural rate for a 1-in-10 number.
				if rng.Float64() < 0.25 {
					include(primary, cfg.Target, rng)
				}
			case ScenarioStreaky:
				if prevHit && rng.Float64() < 0.6 {
					include(primary, cfg.Target, rng)
				}
			case ScenarioWeekday:
				if date.Weekday() == cfg.Weekdays[0] && rng.Float64() < 0.5 {
					include(primary, cfg.Target, rng)
				}
			}
			prevHit = slices.Contains(primary, cfg.Target)

			res := draws.Result{Numbers: primary}
			if game.Secondary != nil {
				res.SecondaryNumbers = sample(*game.Secondary, rng)
			}
			results = []draws.Result{res}
		}

		out = append(out, draws.Draw{
			ID:        fmt.Sprintf("MOCK-%s-%d", game.Type, i+1),
			LottoType: game.Type,
			DrawDate:  date,
			DrawLabel: fmt.Sprintf("Draw %d", i+1),
			Results:   results,
		})
	}
	return out, nil
}

// drawDates walks back from now collecting count draw days at 20:00 UTC.
func drawDates(now time.Time, weekdays []time.Weekday, count int) []time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 20, 0, 0, 0, time.UTC)
	if day.After(now) {
		day = day.AddDate(0, 0, -1)
	}

	var out []time.Time
	for len(out) < count {
		if slices.Contains(weekdays, day.Weekday()) {
			out = append(out, day)
		}
		day = day.AddDate(0, 0, -1)
	}
	slices.Reverse(out)
	return out
}

// sample draws pool.Count distinct numbers in draw order.
func sample(pool lottery.Pool, rng *rand.Rand) []int {
	perm := rng.Perm(pool.Range.Size())
	out := make([]int, pool.Count)
	for i := range out {
		out[i] = pool.Range.Min + perm[i]
	}
	return out
}

// positionalResults draws one digit per position; the position is carried as
// the win class.
func positionalResults(pool lottery.Pool, rng *rand.Rand) []draws.Result {
	out := make([]draws.Result, pool.Count)
	for i := range out {
		pos := i + 1
		out[i] = draws.Result{
			WinClass: &pos,
			Numbers:  []int{pool.Range.Min + rng.Intn(pool.Range.Size())},
		}
	}
	return out
}

// include swaps a random pick for target unless it is already drawn.
func include(numbers []int, target int, rng *rand.Rand) {
	if slices.Contains(numbers, target) {
		return
	}
	numbers[rng.Intn(len(numbers))] = target
}

// Save writes the draws into dir using the store's JSONL layout.
func Save(dir string, list []draws.Draw) error {
	if len(list) == 0 {
		return nil
	}
	store := draws.NewStore()
	store.Append(list)
	for _, lt := range store.Types() {
		if err := store.Save(dir, lt); err != nil {
			return err
		}
	}
	return nil
}
