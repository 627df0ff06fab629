package commands

import (
	"lotto-mcp/internal/lottery"
	"lotto-mcp/internal/report"
	"lotto-mcp/internal/tier"

	"github.com/spf13/cobra"
)

// windowFlags are shared by every command that analyses a date window.
type windowFlags struct {
	lotto     string
	from      string
	to        string
	secondary bool
	position  int
	winClass  int
}

func (w *windowFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&w.lotto, "lotto", "l", "", "game type, e.g. EUROJACKPOT")
	cmd.Flags().StringVar(&w.from, "from", "", "first day of the window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&w.to, "to", "", "last day of the window (YYYY-MM-DD); open-ended when empty")
	cmd.Flags().BoolVar(&w.secondary, "secondary", false, "analyse the bonus pool")
	cmd.Flags().IntVar(&w.position, "position", -1, "digit position of a positional game")
	cmd.Flags().IntVar(&w.winClass, "win-class", -1, "win class with its own number range")
	_ = cmd.MarkFlagRequired("lotto")
	_ = cmd.MarkFlagRequired("from")
}

func optional(v int) *int {
	if v < 0 {
		return nil
	}
	return &v
}

func (w *windowFlags) request(number int) (report.Request, error) {
	from, to, err := report.ParseWindow(w.from, w.to)
	if err != nil {
		return report.Request{}, err
	}
	return report.Request{
		LottoType:           lottery.Type(w.lotto),
		Number:              number,
		DateFrom:            from,
		DateTo:              to,
		UseSecondaryNumbers: w.secondary,
		Position:            optional(w.position),
		WinClass:            optional(w.winClass),
		Tier:                tier.Parse(cfg.Tier),
	}, nil
}

var (
	detailWindow windowFlags
	detailNumber int
)

var detailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Print the profile of one number as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := detailWindow.request(detailNumber)
		if err != nil {
			return err
		}
		res, err := service.NumberDetail(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printJSON(cmd, res)
	},
}

func init() {
	detailWindow.register(detailCmd)
	detailCmd.Flags().IntVarP(&detailNumber, "number", "n", 0, "number to profile")
	_ = detailCmd.MarkFlagRequired("number")
	rootCmd.AddCommand(detailCmd)
}
