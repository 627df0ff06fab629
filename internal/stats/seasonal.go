package stats

import (
	"math"
	"time"
)

const (
	MinDaySamples   = 3
	MinMonthSamples = 2
)

const (
	SeasonalNoPattern    = "no_pattern"
	SeasonalDayPattern   = "day_pattern"
	SeasonalMonthPattern = "month_pattern"
	SeasonalBothPatterns = "both_patterns"

	PeriodDayOfWeek = "dayOfWeek"
	PeriodMonth     = "month"
)

// DayOfWeekStats is the appearance rate on one ISO weekday (1 = Monday).
type DayOfWeekStats struct {
	DayOfWeek   int     `json:"dayOfWeek"`
	Appearances int     `json:"appearances"`
	TotalDraws  int     `json:"totalDraws"`
	Frequency   float64 `json:"frequency"`
}

// MonthStats is the appearance rate in one calendar month (1 = January).
type MonthStats struct {
	Month       int     `json:"month"`
	Appearances int     `json:"appearances"`
	TotalDraws  int     `json:"totalDraws"`
	Frequency   float64 `json:"frequency"`
}

// BestPeriod is the bucket that departs most from the overall rate.
type BestPeriod struct {
	Type      string  `json:"type"`
	Value     int     `json:"value"`
	Frequency float64 `json:"frequency"`
}

// SeasonalPatterns groups every draw of the period by weekday and month.
type SeasonalPatterns struct {
	ByDayOfWeek    []DayOfWeekStats `json:"byDayOfWeek"`
	ByMonth        []MonthStats     `json:"byMonth"`
	DayPValue      float64          `json:"dayPValue"`
	MonthPValue    float64          `json:"monthPValue"`
	BestPeriod     *BestPeriod      `json:"bestPeriod,omitempty"`
	Interpretation string           `json:"interpretation"`
}

type bucket struct {
	value, hits, total int
}

// isoWeekday maps time.Weekday onto 1 (Monday) .. 7 (Sunday).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// CalculateSeasonalPatterns tests whether the appearance rate differs between
// weekdays or months with a χ² test of homogeneity over the non-empty buckets.
func CalculateSeasonalPatterns(drawDates []time.Time, appeared []bool) SeasonalPatterns {
	days := make([]bucket, 7)
	months := make([]bucket, 12)
	for i := range days {
		days[i].value = i + 1
	}
	for i := range months {
		months[i].value = i + 1
	}

	hits := 0
	for i, d := range drawDates {
		d = d.UTC()
		hit := i < len(appeared) && appeared[i]
		wd := &days[isoWeekday(d)-1]
		m := &months[int(d.Month())-1]
		wd.total++
		m.total++
		if hit {
			wd.hits++
			m.hits++
			hits++
		}
	}
	overall := CalculateFrequency(hits, len(drawDates))

	res := SeasonalPatterns{
		ByDayOfWeek:    make([]DayOfWeekStats, 0, 7),
		ByMonth:        make([]MonthStats, 0, 12),
		Interpretation: SeasonalNoPattern,
	}
	for _, b := range days {
		res.ByDayOfWeek = append(res.ByDayOfWeek, DayOfWeekStats{
			DayOfWeek:   b.value,
			Appearances: b.hits,
			TotalDraws:  b.total,
			Frequency:   Round(CalculateFrequency(b.hits, b.total), 4),
		})
	}
	for _, b := range months {
		res.ByMonth = append(res.ByMonth, MonthStats{
			Month:       b.value,
			Appearances: b.hits,
			TotalDraws:  b.total,
			Frequency:   Round(CalculateFrequency(b.hits, b.total), 4),
		})
	}

	dayP := homogeneityPValue(days, overall)
	monthP := homogeneityPValue(months, overall)
	res.DayPValue = Round(dayP, 4)
	res.MonthPValue = Round(monthP, 4)

	dayPattern := dayP < SignificanceLevel
	monthPattern := monthP < SignificanceLevel

	switch {
	case dayPattern && monthPattern:
		res.Interpretation = SeasonalBothPatterns
	case dayPattern:
		res.Interpretation = SeasonalDayPattern
	case monthPattern:
		res.Interpretation = SeasonalMonthPattern
	}

	var best *BestPeriod
	bestScore := 0.0
	consider := func(kind string, buckets []bucket, minSamples int) {
		for _, b := range buckets {
			if b.total < minSamples {
				continue
			}
			score := deviationScore(b, overall)
			if best == nil || score > bestScore {
				f := CalculateFrequency(b.hits, b.total)
				best = &BestPeriod{Type: kind, Value: b.value, Frequency: Round(f, 4)}
				bestScore = score
			}
		}
	}
	if dayPattern {
		consider(PeriodDayOfWeek, days, MinDaySamples)
	}
	if monthPattern {
		consider(PeriodMonth, months, MinMonthSamples)
	}
	res.BestPeriod = best
	return res
}

// homogeneityPValue compares hit/miss counts across buckets against the
// overall rate. Empty buckets do not contribute a degree of freedom.
func homogeneityPValue(buckets []bucket, overall float64) float64 {
	if overall <= 0 || overall >= 1 {
		return 1
	}
	chi := 0.0
	used := 0
	for _, b := range buckets {
		if b.total == 0 {
			continue
		}
		used++
		expHit := float64(b.total) * overall
		expMiss := float64(b.total) * (1 - overall)
		dh := float64(b.hits) - expHit
		dm := float64(b.total-b.hits) - expMiss
		chi += dh*dh/expHit + dm*dm/expMiss
	}
	return chiSquarePValue(chi, used-1)
}

// deviationScore is the standardised distance of a bucket rate from the
// overall rate.
func deviationScore(b bucket, overall float64) float64 {
	if b.total == 0 || overall <= 0 || overall >= 1 {
		return 0
	}
	f := float64(b.hits) / float64(b.total)
	se := math.Sqrt(overall * (1 - overall) / float64(b.total))
	return math.Abs(f-overall) / se
}
