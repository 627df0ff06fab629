package commands

import (
	"fmt"

	"lotto-mcp/internal/lottery"

	"github.com/spf13/cobra"
)

var (
	batchWindow  windowFlags
	batchNumbers []int
	batchAll     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Profile several numbers over one window",
	Long: `Profiles the given numbers, or with --all every number of the pool, over one
date window. Reports are built concurrently, bounded by BATCH_CONCURRENCY.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := batchWindow.request(0)
		if err != nil {
			return err
		}

		numbers := batchNumbers
		if batchAll {
			game, err := lottery.Lookup(req.LottoType)
			if err != nil {
				return err
			}
			numbers = game.NumberRange(req.UseSecondaryNumbers, req.WinClass).Numbers()
		}
		if len(numbers) == 0 {
			return fmt.Errorf("no numbers given: use --numbers or --all")
		}

		res, err := service.Batch(cmd.Context(), req, numbers, cfg.BatchConcurrency)
		if err != nil {
			return err
		}
		return printJSON(cmd, res)
	},
}

func init() {
	batchWindow.register(batchCmd)
	batchCmd.Flags().IntSliceVar(&batchNumbers, "numbers", nil, "comma-separated numbers to profile")
	batchCmd.Flags().BoolVar(&batchAll, "all", false, "profile every number of the pool")
	rootCmd.AddCommand(batchCmd)
}
