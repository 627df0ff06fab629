package stats

import (
	"cmp"
	"slices"
)

const (
	// DefaultCompanionCount is how many companions/avoided numbers are kept.
	DefaultCompanionCount = 5
	// MinAppearancesForPairs is the fewest appearances of the queried number
	// for which co-occurrence counts carry any information.
	MinAppearancesForPairs = 5
)

const (
	PairsRandom        = "random"
	PairsHasCompanions = "has_companions"
	PairsHasAvoided    = "has_avoided"
)

// CompanionNumber is the association between the queried number and another.
type CompanionNumber struct {
	Number                int     `json:"number"`
	CoOccurrences         int     `json:"coOccurrences"`
	ExpectedCoOccurrences float64 `json:"expectedCoOccurrences"`
	Lift                  float64 `json:"lift"`
	PValue                float64 `json:"pValue"`
	IsSignificant         bool    `json:"isSignificant"`
}

// PairAnalysis lists the strongest positive and negative associations.
type PairAnalysis struct {
	TopCompanions  []CompanionNumber `json:"topCompanions"`
	AvoidedNumbers []CompanionNumber `json:"avoidedNumbers"`
	Interpretation string            `json:"interpretation"`
}

// CalculatePairs measures how often each other number is drawn together with
// number. drawNumbers holds the numbers of every draw of the period. Each pair
// is tested with a χ² test (1 df, no continuity correction) on its 2×2 table.
func CalculatePairs(number int, drawNumbers [][]int, topN int) PairAnalysis {
	if topN <= 0 {
		topN = DefaultCompanionCount
	}

	res := PairAnalysis{
		TopCompanions:  []CompanionNumber{},
		AvoidedNumbers: []CompanionNumber{},
		Interpretation: PairsRandom,
	}

	n := len(drawNumbers)
	if n == 0 {
		return res
	}

	searched := 0
	appearances := make(map[int]int)
	co := make(map[int]int)
	for _, numbers := range drawNumbers {
		hit := slices.Contains(numbers, number)
		if hit {
			searched++
		}
		for _, other := range numbers {
			if other == number {
				continue
			}
			appearances[other]++
			if hit {
				co[other]++
			}
		}
	}
	if searched == 0 {
		return res
	}

	var positive, negative []CompanionNumber
	for other, seen := range appearances {
		c := CompanionNumber{
			Number:        other,
			CoOccurrences: co[other],
		}

		expected := float64(searched) * float64(seen) / float64(n)
		lift := 0.0
		if expected > 0 {
			lift = float64(c.CoOccurrences) / expected
		}
		p := chiSquarePValue(pairChiSquare(n, searched, seen, c.CoOccurrences), 1)

		c.ExpectedCoOccurrences = Round(expected, 2)
		c.Lift = Round(lift, 3)
		c.PValue = Round(p, 4)
		c.IsSignificant = p < SignificanceLevel

		if !c.IsSignificant {
			continue
		}
		switch {
		case lift > 1:
			positive = append(positive, c)
		case lift < 1:
			negative = append(negative, c)
		}
	}

	slices.SortFunc(positive, func(a, b CompanionNumber) int {
		if c := cmp.Compare(b.Lift, a.Lift); c != 0 {
			return c
		}
		return cmp.Compare(a.Number, b.Number)
	})
	slices.SortFunc(negative, func(a, b CompanionNumber) int {
		if c := cmp.Compare(a.Lift, b.Lift); c != 0 {
			return c
		}
		return cmp.Compare(a.Number, b.Number)
	})

	if len(positive) > topN {
		positive = positive[:topN]
	}
	if len(negative) > topN {
		negative = negative[:topN]
	}
	res.TopCompanions = append(res.TopCompanions, positive...)
	res.AvoidedNumbers = append(res.AvoidedNumbers, negative...)

	switch {
	case len(res.TopCompanions) > 0:
		res.Interpretation = PairsHasCompanions
	case len(res.AvoidedNumbers) > 0:
		res.Interpretation = PairsHasAvoided
	}
	return res
}

// pairChiSquare is the Pearson χ² statistic of the 2×2 table
// [both, searched only; other only, neither].
func pairChiSquare(n, searched, other, both int) float64 {
	a := float64(both)
	b := float64(searched - both)
	c := float64(other - both)
	d := float64(n - searched - other + both)

	denom := (a + b) * (c + d) * (a + c) * (b + d)
	if denom == 0 {
		return 0
	}
	diff := a*d - b*c
	return float64(n) * diff * diff / denom
}
