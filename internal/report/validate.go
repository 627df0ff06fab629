package report

import (
	"errors"
	"fmt"
	"time"

	"lotto-mcp/internal/lottery"
)

var (
	ErrInvalidRange  = errors.New("dateFrom must not be after dateTo")
	ErrRangeTooLong  = errors.New("date range must not exceed 10 years")
	ErrInvalidNumber = errors.New("number outside the game's range")
)

// MaxRangeYears bounds the analysed window.
const MaxRangeYears = 10

// validateWindow checks the date window; a zero to means "until now".
func validateWindow(lt lottery.Type, from, to time.Time) (lottery.Config, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.After(to) {
		return lottery.Config{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	if from.AddDate(MaxRangeYears, 0, 0).Before(to) {
		return lottery.Config{}, ErrRangeTooLong
	}
	return lottery.Lookup(lt)
}

// Validate checks a request before any data is fetched and returns the game
// configuration it refers to.
func Validate(req Request) (lottery.Config, error) {
	cfg, err := validateWindow(req.LottoType, req.DateFrom, req.DateTo)
	if err != nil {
		return cfg, err
	}
	r := cfg.NumberRange(req.UseSecondaryNumbers, req.WinClass)
	if !r.Contains(req.Number) {
		return cfg, fmt.Errorf("%w: %d not in %d-%d", ErrInvalidNumber, req.Number, r.Min, r.Max)
	}
	return cfg, nil
}
