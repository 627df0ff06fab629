package simulation

import (
	"math"
	"math/rand"
	"sort"
	"time"

	mstats "github.com/montanaflynn/stats"
)

const (
	// DefaultSimulations is the number of simulated periods per run.
	DefaultSimulations = 10000
	// MaxSimulations caps caller-supplied simulation counts.
	MaxSimulations = 50000
)

const (
	WithinExpected = "within_expected"
	AboveExpected  = "above_expected"
	BelowExpected  = "below_expected"
)

// Engine performs the Monte-Carlo calibration. An Engine owns its random
// source and must not be shared between goroutines; create one per run.
type Engine struct {
	rng *rand.Rand
}

// MonteCarloResult compares the observed appearance count with the spread of
// counts produced by a fair game.
type MonteCarloResult struct {
	SimulationCount        int     `json:"simulationCount"`
	SimulatedProbability   float64 `json:"simulatedProbability"`
	TheoreticalProbability float64 `json:"theoreticalProbability"`
	Percentile5            int     `json:"percentile5"`
	Percentile95           int     `json:"percentile95"`
	ActualAppearances      int     `json:"actualAppearances"`
	Interpretation         string  `json:"interpretation"`
}

// NewEngine creates an engine. A zero seed seeds from the clock.
func NewEngine(seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Run simulates `simulations` periods of totalDraws Bernoulli(p) draws and
// places actualAppearances within the resulting distribution.
func (e *Engine) Run(actualAppearances, totalDraws int, p float64, simulations int) MonteCarloResult {
	if simulations <= 0 {
		simulations = DefaultSimulations
	}
	simulations = min(simulations, MaxSimulations)
	p = max(0, min(1, p))

	res := MonteCarloResult{
		SimulationCount:        simulations,
		TheoreticalProbability: round4(p),
		ActualAppearances:      actualAppearances,
	}

	if totalDraws <= 0 {
		res.Interpretation = classify(actualAppearances, 0, 0)
		return res
	}

	counts := make([]int, simulations)
	samples := make([]float64, simulations)
	for i := 0; i < simulations; i++ {
		counts[i] = e.simulatePeriod(totalDraws, p)
		samples[i] = float64(counts[i])
	}

	sort.Ints(counts)

	res.Percentile5 = counts[percentileIndex(simulations, 0.05)]
	res.Percentile95 = counts[percentileIndex(simulations, 0.95)]

	mean, _ := mstats.Mean(samples)
	res.SimulatedProbability = round4(mean / float64(totalDraws))
	res.Interpretation = classify(actualAppearances, res.Percentile5, res.Percentile95)
	return res
}

func (e *Engine) simulatePeriod(draws int, p float64) int {
	hits := 0
	for i := 0; i < draws; i++ {
		if e.rng.Float64() < p {
			hits++
		}
	}
	return hits
}

func percentileIndex(n int, q float64) int {
	idx := int(float64(n) * q)
	if idx >= n {
		idx = n - 1
	}
	return idx
}

func classify(actual, p5, p95 int) string {
	switch {
	case actual < p5:
		return BelowExpected
	case actual > p95:
		return AboveExpected
	default:
		return WithinExpected
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
