package stats

import (
	"math"
	"slices"
)

// FrequencyStatus classifies a number against the rest of its domain.
type FrequencyStatus string

const (
	StatusFrequent FrequencyStatus = "frequent"
	StatusRare     FrequencyStatus = "rare"
	StatusNormal   FrequencyStatus = "normal"
)

const (
	FrequentPercentile = 80.0
	RarePercentile     = 20.0
)

// FrequencyInterpretation is the structured verdict for one number.
type FrequencyInterpretation struct {
	Status            FrequencyStatus `json:"status"`
	Percentile        float64         `json:"percentile"`
	PercentDifference int             `json:"percentDifference"`
	AppearedCount     int             `json:"appearedCount"`
	TotalDraws        int             `json:"totalDraws"`
}

// CalculateFrequency returns k/n, or 0 when n is 0.
func CalculateFrequency(appearances, totalDraws int) float64 {
	if totalDraws <= 0 {
		return 0
	}
	return float64(appearances) / float64(totalDraws)
}

// CalculatePercentile returns the share of domain frequencies strictly below
// frequency, in percent.
func CalculatePercentile(frequency float64, domain []float64) float64 {
	if len(domain) == 0 {
		return 0
	}
	below := 0
	for _, f := range domain {
		if f < frequency {
			below++
		}
	}
	return float64(below) / float64(len(domain)) * 100
}

// StatusForPercentile maps a percentile onto frequent/rare/normal.
func StatusForPercentile(percentile float64) FrequencyStatus {
	switch {
	case percentile >= FrequentPercentile:
		return StatusFrequent
	case percentile <= RarePercentile:
		return StatusRare
	default:
		return StatusNormal
	}
}

// CalculatePercentDifference is the rounded relative gap between observed
// and theoretical frequency, in percent.
func CalculatePercentDifference(frequency, theoretical float64) int {
	if theoretical == 0 {
		return 0
	}
	return int(math.Round(100 * (frequency - theoretical) / theoretical))
}

// InterpretFrequency classifies a number given the frequencies of its whole
// domain (the number itself included).
func InterpretFrequency(appearances, totalDraws int, theoretical float64, domain []float64) FrequencyInterpretation {
	freq := CalculateFrequency(appearances, totalDraws)
	pct := CalculatePercentile(freq, domain)
	return FrequencyInterpretation{
		Status:            StatusForPercentile(pct),
		Percentile:        math.Round(pct*100) / 100,
		PercentDifference: CalculatePercentDifference(freq, theoretical),
		AppearedCount:     appearances,
		TotalDraws:        totalDraws,
	}
}

// CalculateRank assigns standard competition ranks (1, 1, 3) by descending
// frequency.
func CalculateRank(frequencies map[int]float64) map[int]int {
	ranks := make(map[int]int, len(frequencies))
	if len(frequencies) == 0 {
		return ranks
	}

	numbers := make([]int, 0, len(frequencies))
	for n := range frequencies {
		numbers = append(numbers, n)
	}
	slices.SortFunc(numbers, func(a, b int) int {
		fa, fb := frequencies[a], frequencies[b]
		switch {
		case fa > fb:
			return -1
		case fa < fb:
			return 1
		}
		return a - b
	})

	for i, n := range numbers {
		if i > 0 && frequencies[n] == frequencies[numbers[i-1]] {
			ranks[n] = ranks[numbers[i-1]]
			continue
		}
		ranks[n] = i + 1
	}
	return ranks
}
