package stats

import "math"

const (
	// DefaultAutocorrelationLag is the number of lags inspected when the
	// caller does not choose.
	DefaultAutocorrelationLag = 5
	// MaxAutocorrelationLag caps the lag range regardless of configuration.
	MaxAutocorrelationLag = 20
)

const (
	CorrelationRandom   = "random"
	CorrelationPositive = "positive_correlation"
	CorrelationNegative = "negative_correlation"

	MarkovMemoryless      = "memoryless"
	MarkovHotHand         = "hot_hand"
	MarkovGamblersFallacy = "gamblers_fallacy"
)

// LagCorrelation is the autocorrelation of the appearance sequence at one lag.
type LagCorrelation struct {
	Lag           int     `json:"lag"`
	Correlation   float64 `json:"correlation"`
	PValue        float64 `json:"pValue"`
	IsSignificant bool    `json:"isSignificant"`
}

// AutocorrelationAnalysis holds every inspected lag and an overall verdict.
type AutocorrelationAnalysis struct {
	LagCorrelations []LagCorrelation `json:"lagCorrelations"`
	Interpretation  string           `json:"interpretation"`
}

// CalculateAutocorrelation correlates the 0/1 appearance sequence with itself
// shifted by 1..min(maxLag, n/2) draws. Significance uses the t-test for a
// Pearson correlation over the n-k overlapping pairs.
func CalculateAutocorrelation(appeared []bool, maxLag int) AutocorrelationAnalysis {
	if maxLag <= 0 {
		maxLag = DefaultAutocorrelationLag
	}
	maxLag = min(maxLag, MaxAutocorrelationLag)

	x := indicator(appeared)
	n := len(x)
	limit := min(maxLag, n/2)

	res := AutocorrelationAnalysis{
		LagCorrelations: make([]LagCorrelation, 0, max(limit, 0)),
		Interpretation:  CorrelationRandom,
	}

	strongest := -1
	for k := 1; k <= limit; k++ {
		r := pearson(x[:n-k], x[k:])
		p := correlationPValue(r, n-k)
		lc := LagCorrelation{
			Lag:           k,
			Correlation:   Round(r, 4),
			PValue:        Round(p, 4),
			IsSignificant: p < SignificanceLevel,
		}
		res.LagCorrelations = append(res.LagCorrelations, lc)

		if lc.IsSignificant && (strongest < 0 || math.Abs(r) > math.Abs(res.LagCorrelations[strongest].Correlation)) {
			strongest = len(res.LagCorrelations) - 1
		}
	}

	if strongest >= 0 {
		switch c := res.LagCorrelations[strongest].Correlation; {
		case c > 0:
			res.Interpretation = CorrelationPositive
		case c < 0:
			res.Interpretation = CorrelationNegative
		}
	}
	return res
}

// TransitionCounts counts consecutive draw pairs by state.
type TransitionCounts struct {
	AppearedToAppeared       int `json:"appearedToAppeared"`
	AppearedToNotAppeared    int `json:"appearedToNotAppeared"`
	NotAppearedToAppeared    int `json:"notAppearedToAppeared"`
	NotAppearedToNotAppeared int `json:"notAppearedToNotAppeared"`
}

// TransitionProbabilities are the row-normalised transition counts.
type TransitionProbabilities struct {
	AppearedToAppeared       float64 `json:"appearedToAppeared"`
	AppearedToNotAppeared    float64 `json:"appearedToNotAppeared"`
	NotAppearedToAppeared    float64 `json:"notAppearedToAppeared"`
	NotAppearedToNotAppeared float64 `json:"notAppearedToNotAppeared"`
}

// MarkovChainAnalysis models appearances as a two-state chain.
type MarkovChainAnalysis struct {
	TransitionProbabilities TransitionProbabilities `json:"transitionProbabilities"`
	TransitionCounts        TransitionCounts        `json:"transitionCounts"`
	SteadyStateProbability  float64                 `json:"steadyStateProbability"`
	PValue                  float64                 `json:"pValue"`
	Interpretation          string                  `json:"interpretation"`
}

// CalculateMarkovChain counts state transitions between consecutive draws.
//
// The interpretation compares P(appeared | appeared) with
// P(appeared | not appeared) using a pooled two-proportion z-test; the pooled
// rate is the marginal rate of the "to" states. A chain that never left the
// appeared (or not-appeared) state is memoryless by definition.
func CalculateMarkovChain(appeared []bool) MarkovChainAnalysis {
	var t [4]int // index: from*2 + to
	for i := 0; i+1 < len(appeared); i++ {
		t[b2i(appeared[i])*2+b2i(appeared[i+1])]++
	}

	counts := TransitionCounts{
		NotAppearedToNotAppeared: t[0],
		NotAppearedToAppeared:    t[1],
		AppearedToNotAppeared:    t[2],
		AppearedToAppeared:       t[3],
	}

	fromNot := t[0] + t[1]
	fromApp := t[2] + t[3]

	var probs TransitionProbabilities
	if fromNot > 0 {
		probs.NotAppearedToNotAppeared = float64(t[0]) / float64(fromNot)
		probs.NotAppearedToAppeared = float64(t[1]) / float64(fromNot)
	}
	if fromApp > 0 {
		probs.AppearedToNotAppeared = float64(t[2]) / float64(fromApp)
		probs.AppearedToAppeared = float64(t[3]) / float64(fromApp)
	}

	hits := 0
	for _, v := range appeared {
		if v {
			hits++
		}
	}
	marginal := CalculateFrequency(hits, len(appeared))

	steady := marginal
	if denom := probs.NotAppearedToAppeared + probs.AppearedToNotAppeared; denom > 0 {
		steady = probs.NotAppearedToAppeared / denom
	}

	res := MarkovChainAnalysis{
		TransitionCounts: counts,
		TransitionProbabilities: TransitionProbabilities{
			AppearedToAppeared:       Round(probs.AppearedToAppeared, 4),
			AppearedToNotAppeared:    Round(probs.AppearedToNotAppeared, 4),
			NotAppearedToAppeared:    Round(probs.NotAppearedToAppeared, 4),
			NotAppearedToNotAppeared: Round(probs.NotAppearedToNotAppeared, 4),
		},
		SteadyStateProbability: Round(clampProbability(steady), 4),
		PValue:                 1,
		Interpretation:         MarkovMemoryless,
	}

	if fromApp == 0 || fromNot == 0 {
		return res
	}

	pooled := float64(t[1]+t[3]) / float64(fromApp+fromNot)
	se := math.Sqrt(pooled * (1 - pooled) * (1/float64(fromApp) + 1/float64(fromNot)))
	if se == 0 {
		return res
	}
	z := (probs.AppearedToAppeared - probs.NotAppearedToAppeared) / se
	p := normalPValue(z)
	res.PValue = Round(p, 4)

	if p < SignificanceLevel {
		if z > 0 {
			res.Interpretation = MarkovHotHand
		} else {
			res.Interpretation = MarkovGamblersFallacy
		}
	}
	return res
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
