package stats

import (
	"testing"
	"time"
)

// dailyDraws returns n consecutive daily draws starting Monday 2024-01-01.
func dailyDraws(n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = jan(1).AddDate(0, 0, i)
	}
	return out
}

func TestCalculateSeasonalPatterns_DayPattern(t *testing.T) {
	dates := dailyDraws(70)
	appeared := make([]bool, len(dates))
	for i, d := range dates {
		appeared[i] = d.Weekday() == time.Monday
	}

	res := CalculateSeasonalPatterns(dates, appeared)

	if res.Interpretation != SeasonalDayPattern {
		t.Errorf("Expected day_pattern, got %s (day p=%f, month p=%f)", res.Interpretation, res.DayPValue, res.MonthPValue)
	}
	if res.BestPeriod == nil {
		t.Fatal("Expected a best period")
	}
	if res.BestPeriod.Type != PeriodDayOfWeek || res.BestPeriod.Value != 1 || res.BestPeriod.Frequency != 1 {
		t.Errorf("Expected Monday at frequency 1, got %+v", res.BestPeriod)
	}

	if len(res.ByDayOfWeek) != 7 || len(res.ByMonth) != 12 {
		t.Fatalf("Expected 7 day and 12 month buckets, got %d/%d", len(res.ByDayOfWeek), len(res.ByMonth))
	}
	if res.ByDayOfWeek[0].TotalDraws != 10 || res.ByDayOfWeek[0].Appearances != 10 {
		t.Errorf("Unexpected Monday bucket: %+v", res.ByDayOfWeek[0])
	}
	if res.ByDayOfWeek[6].DayOfWeek != 7 || res.ByDayOfWeek[6].Appearances != 0 {
		t.Errorf("Unexpected Sunday bucket: %+v", res.ByDayOfWeek[6])
	}
	if res.ByMonth[0].TotalDraws != 31 || res.ByMonth[1].TotalDraws != 29 || res.ByMonth[2].TotalDraws != 10 {
		t.Errorf("Unexpected month totals: %+v", res.ByMonth[:3])
	}
}

func TestCalculateSeasonalPatterns_NoPattern(t *testing.T) {
	dates := dailyDraws(84)
	appeared := make([]bool, len(dates))
	for i := range appeared {
		appeared[i] = i%3 == 0
	}

	res := CalculateSeasonalPatterns(dates, appeared)
	if res.Interpretation != SeasonalNoPattern && res.Interpretation != SeasonalMonthPattern {
		t.Errorf("Unexpected interpretation %s", res.Interpretation)
	}

	never := CalculateSeasonalPatterns(dates, make([]bool, len(dates)))
	if never.Interpretation != SeasonalNoPattern || never.BestPeriod != nil {
		t.Errorf("Expected no pattern for a number that never appeared, got %+v", never)
	}
	if never.DayPValue != 1 || never.MonthPValue != 1 {
		t.Errorf("Expected p-values of 1, got %f/%f", never.DayPValue, never.MonthPValue)
	}
}

func TestCalculateSeasonalPatterns_Empty(t *testing.T) {
	res := CalculateSeasonalPatterns(nil, nil)
	if res.Interpretation != SeasonalNoPattern || len(res.ByDayOfWeek) != 7 {
		t.Errorf("Expected empty buckets with no pattern, got %+v", res)
	}
}

func TestCalculateSeasonalPatterns_MonthSkew(t *testing.T) {
	year := dailyDraws(366) // 2024 is a leap year

	tests := []struct {
		name      string
		dates     []time.Time
		hit       func(time.Time) bool
		want      string
		wantType  string
		wantValue int
	}{
		{
			name:      "every March draw",
			dates:     year,
			hit:       func(d time.Time) bool { return d.Month() == time.March },
			want:      SeasonalMonthPattern,
			wantType:  PeriodMonth,
			wantValue: 3,
		},
		{
			name:  "Mondays in March",
			dates: year,
			hit: func(d time.Time) bool {
				return d.Month() == time.March && d.Weekday() == time.Monday
			},
			want:      SeasonalBothPatterns,
			wantType:  PeriodMonth,
			wantValue: 3,
		},
		{
			// February holds a single draw and cannot be the best period.
			name:  "single-draw month",
			dates: dailyDraws(32),
			hit: func(d time.Time) bool {
				return d.Equal(jan(1)) || d.Equal(jan(2)) || d.Equal(jan(3)) || d.Month() == time.February
			},
			want:      SeasonalMonthPattern,
			wantType:  PeriodMonth,
			wantValue: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appeared := make([]bool, len(tt.dates))
			for i, d := range tt.dates {
				appeared[i] = tt.hit(d)
			}

			res := CalculateSeasonalPatterns(tt.dates, appeared)
			if res.Interpretation != tt.want {
				t.Errorf("Expected %s, got %s (day p=%f, month p=%f)", tt.want, res.Interpretation, res.DayPValue, res.MonthPValue)
			}
			if res.BestPeriod == nil {
				t.Fatal("Expected a best period")
			}
			if res.BestPeriod.Type != tt.wantType || res.BestPeriod.Value != tt.wantValue {
				t.Errorf("Expected %s %d, got %+v", tt.wantType, tt.wantValue, res.BestPeriod)
			}
		})
	}
}
