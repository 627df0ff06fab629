package tier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Free, Parse(""))
	assert.Equal(t, Free, Parse("gold"))
	assert.Equal(t, Pro, Parse("pro"))
	assert.Equal(t, Premium, Parse(" PREMIUM "))
}

func TestDrawLimit(t *testing.T) {
	assert.Equal(t, 5, DrawLimit(Free))
	assert.Equal(t, 5, DrawLimit("unknown"))
	assert.Equal(t, 200, DrawLimit(Pro))
	assert.Equal(t, 0, DrawLimit(Premium))
}

func TestGate_Allows(t *testing.T) {
	g := NewGate(nil)

	tests := []struct {
		name    string
		feature Feature
		tier    Tier
		draws   int
		want    bool
	}{
		{"free gets no trends", Trends, Free, 1000, false},
		{"pro gets trends", Trends, Pro, 0, true},
		{"pro gets no premium", MarkovChain, Pro, 1000, false},
		{"premium below min draws", Autocorrelation, Premium, MinDrawsForStatistics - 1, false},
		{"premium at min draws", Autocorrelation, Premium, MinDrawsForStatistics, true},
		{"seasonal needs more draws", SeasonalPatterns, Premium, 49, false},
		{"seasonal at threshold", SeasonalPatterns, Premium, 50, true},
		{"premium inherits pro", Timeline, Premium, 0, true},
		{"unknown tier is free", WilsonCI, "VIP", 100, false},
		{"unknown feature", Feature("HOROSCOPE"), Premium, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Allows(tt.feature, tt.tier, tt.draws))
		})
	}
}

func TestGate_Allowed(t *testing.T) {
	g := NewGate(nil)
	assert.Empty(t, g.Allowed(Free, 1000))
	assert.ElementsMatch(t, []Feature{Timeline, Trends, WilsonCI, StdDeviation}, g.Allowed(Pro, 1000))
	assert.Len(t, g.Allowed(Premium, 1000), 9)
	assert.Len(t, g.Allowed(Premium, 40), 8)
}

func TestGate_CopiesTable(t *testing.T) {
	table := DefaultTable()
	g := NewGate(table)
	table[Trends] = Requirement{RequiredTier: Premium}

	assert.True(t, g.Allows(Trends, Pro, 0), "gate must not observe later table edits")
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiers.yaml")
	content := `features:
  pair_analysis: {tier: PREMIUM, min_draws: 60}
  TRENDS: {tier: PREMIUM}
  WILSON_CI: {tier: FREE, min_draws: 10}
  MONTE_CARLO: {min_draws: 5}
  HOROSCOPE: {tier: FREE}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	table, err := LoadTable(path)
	require.NoError(t, err)

	assert.Equal(t, Requirement{Premium, 60}, table[PairAnalysis])
	assert.Equal(t, Requirement{Premium, 0}, table[Trends])
	assert.Equal(t, Requirement{Pro, 10}, table[WilsonCI], "tier may not be lowered")
	assert.Equal(t, Requirement{Premium, MinDrawsForStatistics}, table[MonteCarlo], "minimum may not be lowered")
	_, ok := table[Feature("HOROSCOPE")]
	assert.False(t, ok)
}

func TestLoadTable_Defaults(t *testing.T) {
	table, err := LoadTable("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTable(), table)

	_, err = LoadTable(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
