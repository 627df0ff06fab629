package commands

import (
	"fmt"

	"lotto-mcp/internal/draws"
	"lotto-mcp/internal/lottery"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	importLotto string
	importSheet string
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv|file.xlsx>",
	Short: "Import draws from a CSV or Excel file into the draw store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		game, err := lottery.Lookup(lottery.Type(importLotto))
		if err != nil {
			return err
		}

		list, err := draws.Import(args[0], game.Type, importSheet)
		if err != nil {
			return err
		}

		added := store.Append(list)
		if err := store.Save(cfg.DrawsDir, game.Type); err != nil {
			return err
		}

		log.Info().Str("file", args[0]).Int("read", len(list)).Int("added", added).Msg("Import finished")
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d new draws into %s (%d stored)\n", added, game.Type, store.Len(game.Type))
		return err
	},
}

func init() {
	importCmd.Flags().StringVarP(&importLotto, "lotto", "l", "", "game type of the file")
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "sheet name for Excel files (default: first sheet)")
	_ = importCmd.MarkFlagRequired("lotto")
	rootCmd.AddCommand(importCmd)
}
