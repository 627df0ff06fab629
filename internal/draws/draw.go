package draws

import (
	"slices"
	"time"

	"lotto-mcp/internal/lottery"
)

// Result is one published number set of a draw. Games with several prize
// patterns or positional digits publish one result per win class.
type Result struct {
	WinClass         *int  `json:"winClass,omitempty"`
	Numbers          []int `json:"numbers"`
	SecondaryNumbers []int `json:"secondaryNumbers,omitempty"`
}

// Draw is a single lottery event.
type Draw struct {
	ID        string       `json:"id"`
	LottoType lottery.Type `json:"lottoType"`
	DrawDate  time.Time    `json:"drawDate"`
	DrawLabel string       `json:"drawLabel,omitempty"`
	Results   []Result     `json:"results"`
}

// Filter narrows which numbers of a draw take part in an analysis.
type Filter struct {
	UseSecondary bool
	WinClass     *int
	// Position selects a single digit of a positional game; it is matched
	// against the result win class.
	Position *int
}

func (f Filter) accepts(r Result) bool {
	if f.Position != nil && (r.WinClass == nil || *r.WinClass != *f.Position) {
		return false
	}
	if f.WinClass != nil && (r.WinClass == nil || *r.WinClass != *f.WinClass) {
		return false
	}
	return true
}

// Numbers returns the numbers of the draw that the filter selects, in
// publication order and without duplicates.
func (d Draw) Numbers(f Filter) []int {
	var out []int
	for _, r := range d.Results {
		if !f.accepts(r) {
			continue
		}
		src := r.Numbers
		if f.UseSecondary {
			src = r.SecondaryNumbers
		}
		for _, n := range src {
			if !slices.Contains(out, n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// Contains reports whether number is among the filtered numbers of the draw.
func (d Draw) Contains(number int, f Filter) bool {
	for _, r := range d.Results {
		if !f.accepts(r) {
			continue
		}
		src := r.Numbers
		if f.UseSecondary {
			src = r.SecondaryNumbers
		}
		if slices.Contains(src, number) {
			return true
		}
	}
	return false
}

// Occurrence records a draw in which the queried number appeared.
type Occurrence struct {
	DrawID           string    `json:"drawId"`
	DrawDate         time.Time `json:"drawDate"`
	DrawLabel        string    `json:"drawLabel"`
	AllNumbers       []int     `json:"allNumbers"`
	SecondaryNumbers []int     `json:"secondaryNumbers,omitempty"`
	Position         *int      `json:"position,omitempty"`
}

// NewOccurrence flattens every result of the draw. Position is the win class
// of the first result carrying the number.
func NewOccurrence(d Draw, number int) Occurrence {
	occ := Occurrence{
		DrawID:     d.ID,
		DrawDate:   d.DrawDate,
		DrawLabel:  d.DrawLabel,
		AllNumbers: []int{},
	}

	for _, r := range d.Results {
		occ.AllNumbers = append(occ.AllNumbers, r.Numbers...)
		occ.SecondaryNumbers = append(occ.SecondaryNumbers, r.SecondaryNumbers...)
		if occ.Position == nil && r.WinClass != nil &&
			(slices.Contains(r.Numbers, number) || slices.Contains(r.SecondaryNumbers, number)) {
			pos := *r.WinClass
			occ.Position = &pos
		}
	}
	return occ
}

// TimelineEntry is one draw of the period with its appearance flag.
type TimelineEntry struct {
	DrawDate  time.Time `json:"drawDate"`
	DrawLabel string    `json:"drawLabel"`
	Appeared  bool      `json:"appeared"`
}

// Appearances returns the indicator sequence of the number over the draws,
// in the order given.
func Appearances(all []Draw, number int, f Filter) []bool {
	seq := make([]bool, len(all))
	for i, d := range all {
		seq[i] = d.Contains(number, f)
	}
	return seq
}

// BuildTimeline pairs each draw with its entry of the appearance sequence.
func BuildTimeline(all []Draw, appeared []bool) []TimelineEntry {
	out := make([]TimelineEntry, len(all))
	for i, d := range all {
		out[i] = TimelineEntry{
			DrawDate:  d.DrawDate,
			DrawLabel: d.DrawLabel,
			Appeared:  i < len(appeared) && appeared[i],
		}
	}
	return out
}

// SortChronological orders draws by date, then ID, in place.
func SortChronological(list []Draw) {
	slices.SortStableFunc(list, func(a, b Draw) int {
		if c := a.DrawDate.Compare(b.DrawDate); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}
