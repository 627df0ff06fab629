package stats

import "math"

// DefaultConfidenceLevel is used when a caller does not pick one.
const DefaultConfidenceLevel = 0.95

var zScores = map[float64]float64{
	0.9:   1.645,
	0.95:  1.96,
	0.99:  2.576,
	0.999: 3.291,
}

// ZScore returns the two-sided critical value for a confidence level,
// falling back to 1.96.
func ZScore(confidenceLevel float64) float64 {
	if z, ok := zScores[confidenceLevel]; ok {
		return z
	}
	return 1.96
}

// ConfidenceInterval is a bound on a binomial proportion.
type ConfidenceInterval struct {
	Lower           float64 `json:"lower"`
	Upper           float64 `json:"upper"`
	Center          float64 `json:"center"`
	ConfidenceLevel float64 `json:"confidenceLevel"`
}

// Contains reports whether p lies inside [Lower, Upper].
func (ci ConfidenceInterval) Contains(p float64) bool {
	return p >= ci.Lower && p <= ci.Upper
}

// WilsonInterval computes the Wilson score interval for k successes in n
// trials. k is clamped to [0, n].
func WilsonInterval(successes, trials int, confidenceLevel float64) ConfidenceInterval {
	ci := ConfidenceInterval{ConfidenceLevel: confidenceLevel}
	if trials <= 0 {
		return ci
	}
	k := min(max(successes, 0), trials)
	n := float64(trials)
	z := ZScore(confidenceLevel)
	z2 := z * z

	switch k {
	case 0:
		ci.Upper = z2 / (n + z2)
		return ci
	case trials:
		ci.Lower = n / (n + z2)
		ci.Upper = 1
		ci.Center = 1
		return ci
	}

	p := float64(k) / n
	denom := 1 + z2/n
	center := (p + z2/(2*n)) / denom
	margin := (z / denom) * math.Sqrt(p*(1-p)/n+z2/(4*n*n))

	ci.Center = center
	ci.Lower = math.Max(0, center-margin)
	ci.Upper = math.Min(1, center+margin)
	return ci
}

// Deviation compares observed frequency with the theoretical probability.
type Deviation struct {
	Absolute      float64 `json:"absolute"`
	Relative      float64 `json:"relative"`
	IsSignificant bool    `json:"isSignificant"`
}

// CalculateDeviation flags the deviation as significant when the theoretical
// probability falls outside the interval.
func CalculateDeviation(frequency, theoretical float64, ci ConfidenceInterval) Deviation {
	abs := frequency - theoretical
	rel := 0.0
	if theoretical != 0 {
		rel = abs / theoretical
	}
	return Deviation{
		Absolute:      Round(abs, 4),
		Relative:      Round(rel, 4),
		IsSignificant: !ci.Contains(theoretical),
	}
}
