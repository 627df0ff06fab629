package commands

import (
	"lotto-mcp/internal/report"

	"github.com/spf13/cobra"
)

var freqWindow windowFlags

var frequenciesCmd = &cobra.Command{
	Use:   "frequencies",
	Short: "Rank every number of a pool by frequency",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := freqWindow.request(0)
		if err != nil {
			return err
		}
		res, err := service.Frequencies(cmd.Context(), report.FrequencyRequest{
			LottoType:           req.LottoType,
			DateFrom:            req.DateFrom,
			DateTo:              req.DateTo,
			UseSecondaryNumbers: req.UseSecondaryNumbers,
			Position:            req.Position,
			WinClass:            req.WinClass,
			Tier:                req.Tier,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd, res)
	},
}

func init() {
	freqWindow.register(frequenciesCmd)
	rootCmd.AddCommand(frequenciesCmd)
}
