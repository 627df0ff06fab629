package report

import (
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"lotto-mcp/internal/draws"
	"lotto-mcp/internal/simulation"
	"lotto-mcp/internal/stats"
	"lotto-mcp/internal/tier"
)

// Options tune the analyses behind a report.
type Options struct {
	ConfidenceLevel float64
	MaxLag          int
	Simulations     int
	// Seed fixes the Monte-Carlo source; 0 seeds from the clock.
	Seed           int64
	CompanionCount int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		ConfidenceLevel: stats.DefaultConfidenceLevel,
		MaxLag:          stats.DefaultAutocorrelationLag,
		Simulations:     simulation.DefaultSimulations,
		CompanionCount:  stats.DefaultCompanionCount,
	}
}

// Builder assembles number reports. It holds no per-request state and may
// be shared between goroutines.
type Builder struct {
	gate *tier.Gate
	opts Options
}

// NewBuilder creates a builder; a nil gate uses the default tier table.
func NewBuilder(gate *tier.Gate, opts Options) *Builder {
	if gate == nil {
		gate = tier.NewGate(nil)
	}
	def := DefaultOptions()
	if opts.ConfidenceLevel <= 0 {
		opts.ConfidenceLevel = def.ConfidenceLevel
	}
	if opts.MaxLag <= 0 {
		opts.MaxLag = def.MaxLag
	}
	if opts.Simulations <= 0 {
		opts.Simulations = def.Simulations
	}
	if opts.CompanionCount <= 0 {
		opts.CompanionCount = def.CompanionCount
	}
	return &Builder{gate: gate, opts: opts}
}

// Gate returns the gate the builder consults.
func (b *Builder) Gate() *tier.Gate {
	return b.gate
}

// Input is everything a report is computed from.
type Input struct {
	Number int
	// Draws is the analysed period. It is not modified.
	Draws       []draws.Draw
	Filter      draws.Filter
	Theoretical float64
	// Domain holds the frequencies of the whole pool over the same draws.
	// Without it the summary status falls back to the confidence interval.
	Domain         *draws.FrequencyTable
	Tier           tier.Tier
	AvailableDraws int
	PeriodStart    time.Time
	PeriodEnd      time.Time
}

// Build computes the report for one number. Gated analyses are computed only
// when the caller's tier and the period size allow them.
func (b *Builder) Build(in Input) NumberDetail {
	period := slices.Clone(in.Draws)
	draws.SortChronological(period)

	appeared := draws.Appearances(period, in.Number, in.Filter)
	total := len(period)
	dates := make([]time.Time, total)
	for i, d := range period {
		dates[i] = d.DrawDate
	}

	occurrences := []draws.Occurrence{}
	for i, hit := range appeared {
		if hit {
			occurrences = append(occurrences, draws.NewOccurrence(period[i], in.Number))
		}
	}
	k := len(occurrences)

	freq := stats.CalculateFrequency(k, total)
	ci := stats.WilsonInterval(k, total, b.opts.ConfidenceLevel)

	detail := NumberDetail{
		Summary:        b.summary(in, period, appeared, freq, ci),
		Occurrences:    occurrences,
		AvailableDraws: max(in.AvailableDraws, total),
		PeriodStart:    in.PeriodStart,
		PeriodEnd:      in.PeriodEnd,
	}

	allowed := func(f tier.Feature) bool {
		if b.gate.Allows(f, in.Tier, total) {
			return true
		}
		log.Debug().Str("feature", string(f)).Str("tier", string(in.Tier)).Int("draws", total).Msg("Feature not available")
		return false
	}

	if allowed(tier.Trends) {
		start := in.PeriodStart
		if total > 0 {
			start = dates[0]
		}
		t := stats.CalculateTrends(dates, appeared, start, in.PeriodEnd, in.Theoretical)
		detail.Trends = &t
	}
	if allowed(tier.WilsonCI) {
		c := ci
		detail.ConfidenceInterval = &c
	}
	if allowed(tier.StdDeviation) {
		d := stats.CalculateDeviation(freq, in.Theoretical, ci)
		detail.Deviation = &d
	}
	if allowed(tier.Timeline) {
		detail.Timeline = draws.BuildTimeline(period, appeared)
	}
	if allowed(tier.Autocorrelation) {
		a := stats.CalculateAutocorrelation(appeared, b.opts.MaxLag)
		detail.Autocorrelation = &a
	}
	if allowed(tier.MarkovChain) {
		m := stats.CalculateMarkovChain(appeared)
		detail.MarkovChain = &m
	}
	if allowed(tier.PairAnalysis) {
		if k >= stats.MinAppearancesForPairs {
			sets := make([][]int, total)
			for i, d := range period {
				sets[i] = d.Numbers(in.Filter)
			}
			p := stats.CalculatePairs(in.Number, sets, b.opts.CompanionCount)
			detail.PairAnalysis = &p
		} else {
			log.Debug().Int("number", in.Number).Int("appearances", k).Msg("Too few appearances for pair analysis")
		}
	}
	if allowed(tier.MonteCarlo) {
		mc := simulation.NewEngine(b.opts.Seed).Run(k, total, in.Theoretical, b.opts.Simulations)
		detail.MonteCarlo = &mc
	}
	if allowed(tier.SeasonalPatterns) {
		s := stats.CalculateSeasonalPatterns(dates, appeared)
		detail.SeasonalPatterns = &s
	}

	return ApplyGate(b.gate, detail, in.Tier, total)
}

func (b *Builder) summary(in Input, period []draws.Draw, appeared []bool, freq float64, ci stats.ConfidenceInterval) Summary {
	total := len(period)
	k := 0
	for _, hit := range appeared {
		if hit {
			k++
		}
	}

	s := Summary{
		Number:                   in.Number,
		TotalDraws:               total,
		AppearanceCount:          k,
		FrequencyPercent:         stats.Round(freq*100, 2),
		ExpectedFrequencyPercent: stats.Round(in.Theoretical*100, 2),
		LastSeenDrawsAgo:         total,
	}

	for i := total - 1; i >= 0; i-- {
		if appeared[i] {
			s.LastSeenDrawsAgo = total - 1 - i
			seen := period[i].DrawDate
			s.LastSeenDate = &seen
			break
		}
	}
	s.OverdueScore = stats.Round(float64(s.LastSeenDrawsAgo)*in.Theoretical, 2)

	switch {
	case total == 0:
		s.Status = stats.StatusNormal
	case in.Domain != nil && in.Domain.Total > 0:
		s.Status = stats.InterpretFrequency(k, total, in.Theoretical, in.Domain.Values()).Status
	case in.Theoretical < ci.Lower:
		s.Status = stats.StatusFrequent
	case in.Theoretical > ci.Upper:
		s.Status = stats.StatusRare
	default:
		s.Status = stats.StatusNormal
	}
	return s
}

// ApplyGate clears every field the caller may not see. Applying it twice
// gives the same result as applying it once.
func ApplyGate(gate *tier.Gate, r NumberDetail, t tier.Tier, totalDraws int) NumberDetail {
	if gate == nil {
		gate = tier.NewGate(nil)
	}
	if !gate.Allows(tier.Trends, t, totalDraws) {
		r.Trends = nil
	}
	if !gate.Allows(tier.WilsonCI, t, totalDraws) {
		r.ConfidenceInterval = nil
	}
	if !gate.Allows(tier.StdDeviation, t, totalDraws) {
		r.Deviation = nil
	}
	if !gate.Allows(tier.Timeline, t, totalDraws) {
		r.Timeline = nil
	}
	if !gate.Allows(tier.Autocorrelation, t, totalDraws) {
		r.Autocorrelation = nil
	}
	if !gate.Allows(tier.MarkovChain, t, totalDraws) {
		r.MarkovChain = nil
	}
	if !gate.Allows(tier.PairAnalysis, t, totalDraws) {
		r.PairAnalysis = nil
	}
	if !gate.Allows(tier.MonteCarlo, t, totalDraws) {
		r.MonteCarlo = nil
	}
	if !gate.Allows(tier.SeasonalPatterns, t, totalDraws) {
		r.SeasonalPatterns = nil
	}
	return r
}

