package commands

import (
	"encoding/json"
	"fmt"

	"lotto-mcp/internal/config"
	"lotto-mcp/internal/draws"
	"lotto-mcp/internal/logging"
	"lotto-mcp/internal/report"
	"lotto-mcp/internal/tier"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose  bool
	tierFlag string

	cfg     *config.AppConfig
	store   *draws.Store
	service *report.Service
)

var rootCmd = &cobra.Command{
	Use:   "lotto-mcp",
	Short: "lotto-mcp profiles lottery numbers over historical draws",
	Long: `An MCP Server and CLI that computes per-number statistics (frequency, Wilson intervals,
droughts, autocorrelation, Markov chains, companion numbers, Monte-Carlo calibration and
seasonal patterns) over stored draw history, gated by subscription tier.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(verbose); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if tierFlag != "" {
			cfg.Tier = tierFlag
		}

		table, err := tier.LoadTable(cfg.TierTableFile)
		if err != nil {
			return err
		}

		store = draws.NewStore()
		if err := store.LoadAll(cfg.DrawsDir); err != nil {
			return fmt.Errorf("failed to load draws: %w", err)
		}

		builder := report.NewBuilder(tier.NewGate(table), report.Options{
			MaxLag:      cfg.MaxLag,
			Simulations: cfg.SimulationCount,
			Seed:        cfg.SimulationSeed,
		})
		service = report.NewService(store, builder)

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Str("drawsDir", cfg.DrawsDir).
			Str("tier", string(tier.Parse(cfg.Tier))).
			Msg("lotto-mcp starting")
		return nil
	},
	RunE: runServe,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&tierFlag, "tier", "", "subscription tier (FREE, PRO, PREMIUM); overrides TIER")
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
