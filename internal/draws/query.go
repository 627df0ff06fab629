package draws

import (
	"context"
	"time"

	"lotto-mcp/internal/lottery"
)

// Query selects the draws of one game inside an inclusive date window.
type Query struct {
	LottoType lottery.Type
	From      time.Time
	To        time.Time
	// Limit keeps only the most recent draws of the window; 0 means all.
	Limit int
}

// Provider is the data-access side of an analysis.
type Provider interface {
	// FindPeriod returns the draws of the window in chronological order,
	// reduced to the most recent q.Limit draws when a limit is set.
	FindPeriod(ctx context.Context, q Query) ([]Draw, error)
	// Count returns the number of draws in the window, ignoring q.Limit.
	Count(ctx context.Context, q Query) (int, error)
}

func (q Query) includes(d Draw) bool {
	if d.DrawDate.Before(q.From) {
		return false
	}
	return q.To.IsZero() || !d.DrawDate.After(q.To)
}
