package visuals

import (
	"fmt"
	"math"
	"strings"

	"lotto-mcp/internal/stats"
)

// maxPoints is roughly where xychart-beta labels start to overlap.
const maxPoints = 60

var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// GenerateTimeSeriesChart creates a Mermaid xychart-beta with monthly actual
// appearances as bars and the expected count as a line.
func GenerateTimeSeriesChart(number int, series []stats.MonthlyAppearance) string {
	if len(series) == 0 {
		return ""
	}

	step := 1
	if len(series) > maxPoints {
		step = int(math.Ceil(float64(len(series)) / maxPoints))
	}

	var labels, actual, expected []string
	maxY := 0.0
	for i, m := range series {
		if i%step != 0 && i != len(series)-1 {
			continue
		}
		labels = append(labels, fmt.Sprintf("\"%s\"", m.Month))
		actual = append(actual, fmt.Sprintf("%d", m.Appearances))
		expected = append(expected, fmt.Sprintf("%.2f", m.ExpectedAppearances))
		maxY = math.Max(maxY, math.Max(float64(m.Appearances), m.ExpectedAppearances))
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"Number %d per Month (bars: actual, line: expected)\"\n", number))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Appearances\" 0 --> %d\n", yCeiling(maxY)))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(actual, ", ")))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(expected, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateSeasonalChart renders the weekday and month hit rates, in percent,
// as two bar charts. Buckets without draws are left out.
func GenerateSeasonalChart(s stats.SeasonalPatterns) string {
	var days, dayValues []string
	for _, d := range s.ByDayOfWeek {
		if d.TotalDraws == 0 || d.DayOfWeek < 1 || d.DayOfWeek > 7 {
			continue
		}
		days = append(days, fmt.Sprintf("\"%s\"", weekdayLabels[d.DayOfWeek-1]))
		dayValues = append(dayValues, fmt.Sprintf("%.1f", d.Frequency*100))
	}

	var months, monthValues []string
	for _, m := range s.ByMonth {
		if m.TotalDraws == 0 || m.Month < 1 || m.Month > 12 {
			continue
		}
		months = append(months, fmt.Sprintf("\"%s\"", monthLabels[m.Month-1]))
		monthValues = append(monthValues, fmt.Sprintf("%.1f", m.Frequency*100))
	}

	if len(days) == 0 && len(months) == 0 {
		return ""
	}

	var sb strings.Builder
	if len(days) > 0 {
		writeBarChart(&sb, "Hit Rate by Weekday (%)", days, dayValues)
	}
	if len(months) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		writeBarChart(&sb, "Hit Rate by Month (%)", months, monthValues)
	}
	return sb.String()
}

// GenerateFrequencyChart creates a bar chart of appearance counts per number.
func GenerateFrequencyChart(numbers, counts []int) string {
	if len(numbers) == 0 || len(numbers) != len(counts) {
		return ""
	}

	var labels, values []string
	maxVal := 0
	for i, n := range numbers {
		labels = append(labels, fmt.Sprintf("\"%d\"", n))
		values = append(values, fmt.Sprintf("%d", counts[i]))
		maxVal = max(maxVal, counts[i])
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Appearances per Number\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Draws\" 0 --> %d\n", yCeiling(float64(maxVal))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

func writeBarChart(sb *strings.Builder, title string, labels, values []string) {
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"%s\"\n", title))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString("    y-axis \"Hit Rate\" 0 --> 100\n")
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
}

// yCeiling leaves some room above the tallest value.
func yCeiling(maxVal float64) int {
	return max(1, int(math.Ceil(maxVal*1.2)))
}
