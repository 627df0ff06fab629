package report

import (
	"time"

	"lotto-mcp/internal/draws"
	"lotto-mcp/internal/lottery"
	"lotto-mcp/internal/simulation"
	"lotto-mcp/internal/stats"
	"lotto-mcp/internal/tier"
)

// Request asks for the profile of one number over a date window.
type Request struct {
	LottoType           lottery.Type `json:"lottoType"`
	Number              int          `json:"number"`
	DateFrom            time.Time    `json:"dateFrom"`
	DateTo              time.Time    `json:"dateTo"`
	UseSecondaryNumbers bool         `json:"useSecondaryNumbers,omitempty"`
	Position            *int         `json:"position,omitempty"`
	WinClass            *int         `json:"winClass,omitempty"`
	Tier                tier.Tier    `json:"tier"`
}

func (r Request) filter() draws.Filter {
	return draws.Filter{
		UseSecondary: r.UseSecondaryNumbers,
		WinClass:     r.WinClass,
		Position:     r.Position,
	}
}

// Summary is returned to every tier.
type Summary struct {
	Number                   int                   `json:"number"`
	TotalDraws               int                   `json:"totalDraws"`
	AppearanceCount          int                   `json:"appearanceCount"`
	FrequencyPercent         float64               `json:"frequencyPercent"`
	ExpectedFrequencyPercent float64               `json:"expectedFrequencyPercent"`
	Status                   stats.FrequencyStatus `json:"status"`
	LastSeenDrawsAgo         int                   `json:"lastSeenDrawsAgo"`
	LastSeenDate             *time.Time            `json:"lastSeenDate,omitempty"`
	OverdueScore             float64               `json:"overdueScore"`
}

// NumberDetail is the full profile. Gated fields are nil unless the caller's
// tier and the period size allow them.
type NumberDetail struct {
	Summary Summary `json:"summary"`

	Trends             *stats.TrendAnalysis      `json:"trends,omitempty"`
	ConfidenceInterval *stats.ConfidenceInterval `json:"confidenceInterval,omitempty"`
	Deviation          *stats.Deviation          `json:"deviation,omitempty"`
	Timeline           []draws.TimelineEntry     `json:"timeline,omitempty"`

	Autocorrelation  *stats.AutocorrelationAnalysis `json:"autocorrelation,omitempty"`
	MarkovChain      *stats.MarkovChainAnalysis     `json:"markovChain,omitempty"`
	PairAnalysis     *stats.PairAnalysis            `json:"pairAnalysis,omitempty"`
	MonteCarlo       *simulation.MonteCarloResult   `json:"monteCarlo,omitempty"`
	SeasonalPatterns *stats.SeasonalPatterns        `json:"seasonalPatterns,omitempty"`

	Occurrences []draws.Occurrence `json:"occurrences"`

	// AvailableDraws is the size of the window before the tier draw cap.
	AvailableDraws int       `json:"availableDraws"`
	PeriodStart    time.Time `json:"periodStart"`
	PeriodEnd      time.Time `json:"periodEnd"`
}

// FrequencyRequest asks for the frequency table of a whole number pool.
type FrequencyRequest struct {
	LottoType           lottery.Type `json:"lottoType"`
	DateFrom            time.Time    `json:"dateFrom"`
	DateTo              time.Time    `json:"dateTo"`
	UseSecondaryNumbers bool         `json:"useSecondaryNumbers,omitempty"`
	Position            *int         `json:"position,omitempty"`
	WinClass            *int         `json:"winClass,omitempty"`
	Tier                tier.Tier    `json:"tier"`
}

// NumberFrequency is one row of a frequency overview.
type NumberFrequency struct {
	Number             int                           `json:"number"`
	Count              int                           `json:"count"`
	Frequency          float64                       `json:"frequency"`
	Rank               int                           `json:"rank"`
	Interpretation     stats.FrequencyInterpretation `json:"interpretation"`
	ConfidenceInterval *stats.ConfidenceInterval     `json:"confidenceInterval,omitempty"`
}

// FrequencyOverview ranks every number of a pool over a window.
type FrequencyOverview struct {
	LottoType              lottery.Type      `json:"lottoType"`
	TotalDraws             int               `json:"totalDraws"`
	AvailableDraws         int               `json:"availableDraws"`
	TheoreticalProbability float64           `json:"theoreticalProbability"`
	Numbers                []NumberFrequency `json:"numbers"`
	PeriodStart            time.Time         `json:"periodStart"`
	PeriodEnd              time.Time         `json:"periodEnd"`
}
