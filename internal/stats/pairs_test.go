package stats

import (
	"math"
	"testing"
)

// pairFixture: 7 appears in the first 20 of 40 draws, 8 only alongside it,
// 9 only without it, 10 in every draw and 11 in every other draw.
func pairFixture() [][]int {
	var out [][]int
	for i := 0; i < 40; i++ {
		numbers := []int{10}
		if i < 20 {
			numbers = append(numbers, 7, 8)
		} else {
			numbers = append(numbers, 9)
		}
		if i%2 == 1 {
			numbers = append(numbers, 11)
		}
		out = append(out, numbers)
	}
	return out
}

func TestCalculatePairs(t *testing.T) {
	res := CalculatePairs(7, pairFixture(), 5)

	if res.Interpretation != PairsHasCompanions {
		t.Errorf("Expected has_companions, got %s", res.Interpretation)
	}
	if len(res.TopCompanions) != 1 || res.TopCompanions[0].Number != 8 {
		t.Fatalf("Expected 8 as sole companion, got %+v", res.TopCompanions)
	}
	top := res.TopCompanions[0]
	if top.CoOccurrences != 20 || math.Abs(top.ExpectedCoOccurrences-10) > 0.001 || math.Abs(top.Lift-2) > 0.001 {
		t.Errorf("Unexpected companion stats: %+v", top)
	}
	if !top.IsSignificant || top.PValue >= SignificanceLevel {
		t.Errorf("Expected companion to be significant: %+v", top)
	}

	if len(res.AvoidedNumbers) != 1 || res.AvoidedNumbers[0].Number != 9 {
		t.Fatalf("Expected 9 as sole avoided number, got %+v", res.AvoidedNumbers)
	}
	if res.AvoidedNumbers[0].Lift != 0 {
		t.Errorf("Expected lift 0 for 9, got %f", res.AvoidedNumbers[0].Lift)
	}
}

func TestCalculatePairs_TopNOrdering(t *testing.T) {
	// 1 appears in the first half; 2..9 co-occur with it at falling rates.
	var draws [][]int
	for i := 0; i < 60; i++ {
		var numbers []int
		if i < 30 {
			numbers = append(numbers, 1)
			for other := 2; other <= 9; other++ {
				if i < 30-other {
					numbers = append(numbers, other)
				}
			}
		}
		draws = append(draws, numbers)
	}

	res := CalculatePairs(1, draws, 3)
	if len(res.TopCompanions) != 3 {
		t.Fatalf("Expected 3 companions, got %d", len(res.TopCompanions))
	}
	for i := 1; i < len(res.TopCompanions); i++ {
		prev, cur := res.TopCompanions[i-1], res.TopCompanions[i]
		if prev.Lift < cur.Lift || (prev.Lift == cur.Lift && prev.Number > cur.Number) {
			t.Errorf("Companions out of order at %d: %+v then %+v", i, prev, cur)
		}
	}
}

func TestCalculatePairs_Degenerate(t *testing.T) {
	res := CalculatePairs(7, nil, 5)
	if res.Interpretation != PairsRandom || res.TopCompanions == nil || res.AvoidedNumbers == nil {
		t.Errorf("Expected neutral result with empty lists, got %+v", res)
	}

	res = CalculatePairs(42, pairFixture(), 5)
	if res.Interpretation != PairsRandom || len(res.TopCompanions) != 0 {
		t.Errorf("Expected random for a number that never appeared, got %+v", res)
	}
}
