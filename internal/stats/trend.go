package stats

import (
	"fmt"
	"time"

	mstats "github.com/montanaflynn/stats"
)

// now is replaced in tests to pin open-ended periods.
var now = time.Now

const day = 24 * time.Hour

// MonthlyAppearance aggregates one calendar month of the period.
type MonthlyAppearance struct {
	Month               string  `json:"month"`
	Draws               int     `json:"draws"`
	Appearances         int     `json:"appearances"`
	ExpectedAppearances float64 `json:"expectedAppearances"`
}

// TrendAnalysis describes droughts and streaks of a number over a period.
type TrendAnalysis struct {
	LongestDroughtDays            int                 `json:"longestDroughtDays"`
	CurrentDroughtDays            int                 `json:"currentDroughtDays"`
	AverageDaysBetweenAppearances int                 `json:"averageDaysBetweenAppearances"`
	CurrentStreak                 int                 `json:"currentStreak"`
	LongestStreak                 int                 `json:"longestStreak"`
	TimeSeries                    []MonthlyAppearance `json:"timeSeries,omitempty"`
}

func daysBetween(a, b time.Time) int {
	if b.Before(a) {
		return 0
	}
	return int(b.Sub(a) / day)
}

// CalculateTrends analyses the chronological draw dates of a period together
// with the appearance flag of each draw. A zero end means the period is still
// open and droughts run to the current time.
func CalculateTrends(drawDates []time.Time, appeared []bool, start, end time.Time, theoretical float64) TrendAnalysis {
	if end.IsZero() {
		end = now().UTC()
	}
	if start.IsZero() {
		start = end
		if len(drawDates) > 0 {
			start = drawDates[0]
		}
	}

	var hits []time.Time
	for i, d := range drawDates {
		if i < len(appeared) && appeared[i] {
			hits = append(hits, d)
		}
	}

	var res TrendAnalysis

	if len(hits) == 0 {
		res.CurrentDroughtDays = daysBetween(start, end)
		res.LongestDroughtDays = res.CurrentDroughtDays
	} else {
		res.LongestDroughtDays = daysBetween(start, hits[0])

		gaps := make([]float64, 0, len(hits)-1)
		for i := 1; i < len(hits); i++ {
			g := daysBetween(hits[i-1], hits[i])
			gaps = append(gaps, float64(g))
			res.LongestDroughtDays = max(res.LongestDroughtDays, g)
		}
		if len(gaps) > 0 {
			mean, _ := mstats.Mean(gaps)
			res.AverageDaysBetweenAppearances = int(Round(mean, 0))
		}

		lastDrawHit := len(appeared) > 0 && appeared[len(appeared)-1]
		if !lastDrawHit {
			res.CurrentDroughtDays = daysBetween(hits[len(hits)-1], end)
		}
		res.LongestDroughtDays = max(res.LongestDroughtDays, res.CurrentDroughtDays)
	}

	res.CurrentStreak, res.LongestStreak = streaks(appeared)
	res.TimeSeries = monthlySeries(drawDates, appeared, start, end, theoretical)
	return res
}

// streaks returns the trailing and the longest run of appearances.
func streaks(appeared []bool) (current, longest int) {
	for _, hit := range appeared {
		if hit {
			current++
			longest = max(longest, current)
		} else {
			current = 0
		}
	}
	return current, longest
}

func monthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

func monthlySeries(drawDates []time.Time, appeared []bool, start, end time.Time, theoretical float64) []MonthlyAppearance {
	start, end = start.UTC(), end.UTC()
	if end.Before(start) {
		return nil
	}

	var series []MonthlyAppearance
	index := make(map[string]int)
	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(end) {
		key := monthKey(cursor)
		index[key] = len(series)
		series = append(series, MonthlyAppearance{Month: key})
		cursor = cursor.AddDate(0, 1, 0)
	}

	for i, d := range drawDates {
		idx, ok := index[monthKey(d.UTC())]
		if !ok {
			continue
		}
		series[idx].Draws++
		if i < len(appeared) && appeared[i] {
			series[idx].Appearances++
		}
	}

	for i := range series {
		series[i].ExpectedAppearances = Round(float64(series[i].Draws)*theoretical, 2)
	}
	return series
}
