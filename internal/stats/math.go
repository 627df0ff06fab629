package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// SignificanceLevel is the p-value threshold used by every test in this
// package.
const SignificanceLevel = 0.05

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// indicator converts an appearance sequence to 0/1 values.
func indicator(seq []bool) []float64 {
	out := make([]float64, len(seq))
	for i, v := range seq {
		if v {
			out[i] = 1
		}
	}
	return out
}

// pearson returns the correlation of two equal-length series, or 0 when it is
// undefined (fewer than 2 points or a constant series).
func pearson(a, b []float64) float64 {
	if len(a) < 2 || len(a) != len(b) {
		return 0
	}
	va, err := mstats.PopulationVariance(a)
	if err != nil || va == 0 {
		return 0
	}
	vb, err := mstats.PopulationVariance(b)
	if err != nil || vb == 0 {
		return 0
	}
	r, err := mstats.Correlation(a, b)
	if err != nil || math.IsNaN(r) {
		return 0
	}
	return math.Max(-1, math.Min(1, r))
}

// correlationPValue is the two-sided p-value of the t-test for a Pearson
// correlation r over n pairs.
func correlationPValue(r float64, n int) float64 {
	df := float64(n - 2)
	if df <= 0 {
		return 1
	}
	if math.Abs(r) >= 1 {
		return 0
	}
	t := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return clampProbability(2 * dist.Survival(math.Abs(t)))
}

// chiSquarePValue is the upper-tail probability of stat under χ²(df).
func chiSquarePValue(stat float64, df int) float64 {
	if df <= 0 || stat <= 0 || math.IsNaN(stat) {
		return 1
	}
	return clampProbability(distuv.ChiSquared{K: float64(df)}.Survival(stat))
}

// normalPValue is the two-sided p-value of a standard normal statistic.
func normalPValue(z float64) float64 {
	if math.IsNaN(z) {
		return 1
	}
	return clampProbability(2 * distuv.UnitNormal.Survival(math.Abs(z)))
}

func clampProbability(p float64) float64 {
	if math.IsNaN(p) {
		return 1
	}
	return math.Max(0, math.Min(1, p))
}
