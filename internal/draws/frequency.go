package draws

import (
	"slices"

	"lotto-mcp/internal/lottery"
)

// FrequencyTable holds appearance counts of every number of a pool over a
// set of draws. It is built once per request and shared by the domain-wide
// calculations (percentile status, rank, pairs).
type FrequencyTable struct {
	Range  lottery.Range
	Total  int
	counts map[int]int
}

// NewFrequencyTable counts appearances of each number of r over the draws.
// Numbers outside r are ignored.
func NewFrequencyTable(all []Draw, r lottery.Range, f Filter) *FrequencyTable {
	ft := &FrequencyTable{
		Range:  r,
		Total:  len(all),
		counts: make(map[int]int, r.Size()),
	}
	for _, d := range all {
		for _, n := range d.Numbers(f) {
			if r.Contains(n) {
				ft.counts[n]++
			}
		}
	}
	return ft
}

// Count returns how many draws contained n.
func (ft *FrequencyTable) Count(n int) int {
	return ft.counts[n]
}

// Frequency returns count/total for n, 0 for an empty table.
func (ft *FrequencyTable) Frequency(n int) float64 {
	if ft.Total == 0 {
		return 0
	}
	return float64(ft.counts[n]) / float64(ft.Total)
}

// Frequencies maps every number of the range, including unseen ones, to its
// frequency.
func (ft *FrequencyTable) Frequencies() map[int]float64 {
	out := make(map[int]float64, ft.Range.Size())
	for _, n := range ft.Range.Numbers() {
		out[n] = ft.Frequency(n)
	}
	return out
}

// Values returns the frequencies of the whole range in ascending order.
func (ft *FrequencyTable) Values() []float64 {
	out := make([]float64, 0, ft.Range.Size())
	for _, n := range ft.Range.Numbers() {
		out = append(out, ft.Frequency(n))
	}
	slices.Sort(out)
	return out
}
