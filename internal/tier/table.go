package tier

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Tier is a subscription level. The zero value is treated as Free.
type Tier string

const (
	Free    Tier = "FREE"
	Pro     Tier = "PRO"
	Premium Tier = "PREMIUM"
)

// Parse maps a caller-supplied tier onto a known Tier; anything unknown is
// Free.
func Parse(s string) Tier {
	switch Tier(strings.ToUpper(strings.TrimSpace(s))) {
	case Pro:
		return Pro
	case Premium:
		return Premium
	default:
		return Free
	}
}

func (t Tier) level() int {
	switch t {
	case Pro:
		return 1
	case Premium:
		return 2
	default:
		return 0
	}
}

// AtLeast reports whether t is the same as or above other.
func (t Tier) AtLeast(other Tier) bool {
	return t.level() >= other.level()
}

// DrawLimit is how many of the most recent draws a tier may analyse; 0 means
// unlimited.
func DrawLimit(t Tier) int {
	switch Parse(string(t)) {
	case Premium:
		return 0
	case Pro:
		return 200
	default:
		return 5
	}
}

// Feature names a gated report field.
type Feature string

const (
	Timeline         Feature = "TIMELINE"
	Trends           Feature = "TRENDS"
	WilsonCI         Feature = "WILSON_CI"
	StdDeviation     Feature = "STD_DEVIATION"
	Autocorrelation  Feature = "AUTOCORRELATION"
	MarkovChain      Feature = "MARKOV_CHAIN"
	PairAnalysis     Feature = "PAIR_ANALYSIS"
	MonteCarlo       Feature = "MONTE_CARLO"
	SeasonalPatterns Feature = "SEASONAL_PATTERNS"
)

const (
	MinDrawsForStatistics = 30
	MinDrawsForSeasonal   = 50
)

// Requirement is what a caller needs for a feature to be computed.
type Requirement struct {
	RequiredTier Tier `yaml:"tier" json:"requiredTier"`
	MinDraws     int  `yaml:"min_draws" json:"minDraws"`
}

// Table maps features to their requirements.
type Table map[Feature]Requirement

// DefaultTable returns a fresh copy of the built-in requirements.
func DefaultTable() Table {
	return Table{
		Timeline:         {Pro, 0},
		Trends:           {Pro, 0},
		WilsonCI:         {Pro, 0},
		StdDeviation:     {Pro, 0},
		Autocorrelation:  {Premium, MinDrawsForStatistics},
		MarkovChain:      {Premium, MinDrawsForStatistics},
		PairAnalysis:     {Premium, MinDrawsForStatistics},
		MonteCarlo:       {Premium, MinDrawsForStatistics},
		SeasonalPatterns: {Premium, MinDrawsForSeasonal},
	}
}

// Features lists the table's features in a stable order.
func (t Table) Features() []Feature {
	out := make([]Feature, 0, len(t))
	for f := range t {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

type fileTable struct {
	Features map[string]Requirement `yaml:"features"`
}

// LoadTable reads requirement overrides from a YAML file of the form
//
//	features:
//	  PAIR_ANALYSIS: {tier: PREMIUM, min_draws: 60}
//
// Overrides may only tighten the built-in table: a lower tier or a smaller
// minimum is ignored. An empty path returns the defaults.
func LoadTable(path string) (Table, error) {
	table := DefaultTable()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tier table: %w", err)
	}

	var raw fileTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse tier table: %w", err)
	}

	for name, req := range raw.Features {
		f := Feature(strings.ToUpper(name))
		base, ok := table[f]
		if !ok {
			log.Warn().Str("feature", name).Msg("Ignoring unknown feature in tier table")
			continue
		}
		if req.RequiredTier != "" {
			if want := Parse(string(req.RequiredTier)); want.AtLeast(base.RequiredTier) {
				base.RequiredTier = want
			} else {
				log.Warn().Str("feature", name).Str("tier", string(want)).Msg("Ignoring tier override below built-in requirement")
			}
		}
		if req.MinDraws > base.MinDraws {
			base.MinDraws = req.MinDraws
		}
		table[f] = base
	}

	log.Debug().Str("path", path).Int("features", len(raw.Features)).Msg("Loaded tier table overrides")
	return table, nil
}
