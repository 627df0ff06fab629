package stats

import (
	"math"
	"testing"
)

// blocks builds runs of `size` appearances followed by `size` misses.
func blocks(size, repeats int) []bool {
	var seq []bool
	for r := 0; r < repeats; r++ {
		for i := 0; i < size; i++ {
			seq = append(seq, true)
		}
		for i := 0; i < size; i++ {
			seq = append(seq, false)
		}
	}
	return seq
}

func alternating(n int) []bool {
	seq := make([]bool, n)
	for i := range seq {
		seq[i] = i%2 == 1
	}
	return seq
}

func TestCalculateAutocorrelation_Interpretation(t *testing.T) {
	tests := []struct {
		name string
		seq  []bool
		lag  int
		want string
	}{
		{"clustered", blocks(4, 5), 1, CorrelationPositive},
		{"alternating", alternating(40), 1, CorrelationNegative},
		{"constant", make([]bool, 40), 5, CorrelationRandom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CalculateAutocorrelation(tt.seq, tt.lag)
			if res.Interpretation != tt.want {
				t.Errorf("Expected %s, got %s (%+v)", tt.want, res.Interpretation, res.LagCorrelations)
			}
			for _, lc := range res.LagCorrelations {
				if lc.Correlation < -1 || lc.Correlation > 1 {
					t.Errorf("Correlation out of range at lag %d: %f", lc.Lag, lc.Correlation)
				}
				if lc.PValue < 0 || lc.PValue > 1 {
					t.Errorf("p-value out of range at lag %d: %f", lc.Lag, lc.PValue)
				}
			}
		})
	}
}

func TestCalculateAutocorrelation_LagBounds(t *testing.T) {
	res := CalculateAutocorrelation(alternating(6), 5)
	if len(res.LagCorrelations) != 3 {
		t.Errorf("Expected lags capped at n/2 = 3, got %d", len(res.LagCorrelations))
	}

	res = CalculateAutocorrelation(alternating(200), 1000)
	if len(res.LagCorrelations) != MaxAutocorrelationLag {
		t.Errorf("Expected lags capped at %d, got %d", MaxAutocorrelationLag, len(res.LagCorrelations))
	}

	res = CalculateAutocorrelation(nil, 5)
	if len(res.LagCorrelations) != 0 || res.Interpretation != CorrelationRandom {
		t.Errorf("Expected empty random result for no draws, got %+v", res)
	}

	res = CalculateAutocorrelation(make([]bool, 40), 5)
	for _, lc := range res.LagCorrelations {
		if lc.Correlation != 0 || lc.PValue != 1 || lc.IsSignificant {
			t.Errorf("Expected neutral lag for constant sequence, got %+v", lc)
		}
	}
}

func TestCalculateMarkovChain_RowsSumToOne(t *testing.T) {
	seqs := [][]bool{
		blocks(3, 10),
		alternating(31),
		{true, false, false, true, true, true, false, true, false, false, false, true},
	}
	for i, seq := range seqs {
		res := CalculateMarkovChain(seq)
		p := res.TransitionProbabilities
		c := res.TransitionCounts

		if c.AppearedToAppeared+c.AppearedToNotAppeared > 0 {
			if sum := p.AppearedToAppeared + p.AppearedToNotAppeared; math.Abs(sum-1) > 0.001 {
				t.Errorf("seq %d: appeared row sums to %f", i, sum)
			}
		}
		if c.NotAppearedToAppeared+c.NotAppearedToNotAppeared > 0 {
			if sum := p.NotAppearedToAppeared + p.NotAppearedToNotAppeared; math.Abs(sum-1) > 0.001 {
				t.Errorf("seq %d: not-appeared row sums to %f", i, sum)
			}
		}
		if res.SteadyStateProbability < 0 || res.SteadyStateProbability > 1 {
			t.Errorf("seq %d: steady state out of range: %f", i, res.SteadyStateProbability)
		}
	}
}

func TestCalculateMarkovChain_Interpretation(t *testing.T) {
	hot := CalculateMarkovChain(blocks(4, 10))
	if hot.Interpretation != MarkovHotHand {
		t.Errorf("Expected hot_hand, got %s (p=%f)", hot.Interpretation, hot.PValue)
	}
	if hot.TransitionCounts.AppearedToAppeared != 30 || hot.TransitionCounts.NotAppearedToAppeared != 9 {
		t.Errorf("Unexpected counts: %+v", hot.TransitionCounts)
	}
	// P(n->a)=9/39, P(a->n)=10/40
	wantSteady := (9.0 / 39.0) / (9.0/39.0 + 0.25)
	if math.Abs(hot.SteadyStateProbability-wantSteady) > 0.001 {
		t.Errorf("Expected steady state %.4f, got %.4f", wantSteady, hot.SteadyStateProbability)
	}

	cold := CalculateMarkovChain(alternating(40))
	if cold.Interpretation != MarkovGamblersFallacy {
		t.Errorf("Expected gamblers_fallacy, got %s", cold.Interpretation)
	}
}

func TestCalculateMarkovChain_Degenerate(t *testing.T) {
	never := CalculateMarkovChain(make([]bool, 30))
	if never.Interpretation != MarkovMemoryless {
		t.Errorf("Expected memoryless, got %s", never.Interpretation)
	}
	if never.SteadyStateProbability != 0 {
		t.Errorf("Expected marginal 0 as steady state, got %f", never.SteadyStateProbability)
	}
	if never.TransitionProbabilities.AppearedToAppeared != 0 || never.TransitionProbabilities.AppearedToNotAppeared != 0 {
		t.Errorf("Expected zero row for unseen state, got %+v", never.TransitionProbabilities)
	}

	empty := CalculateMarkovChain(nil)
	if empty.Interpretation != MarkovMemoryless || empty.PValue != 1 {
		t.Errorf("Expected neutral result for empty input, got %+v", empty)
	}
}
