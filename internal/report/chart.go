package report

import (
	"math"
	"strings"
	"time"

	"TrendCast/internal/calculator"
	"TrendCast/internal/session"
)

const (
	historyMark    = '*'
	projectionMark = '+'
	minChartWidth  = 10
	minChartHeight = 3
)

// RenderChart draws history and projection as a text line chart with a
// price axis on the left and the date span underneath.
func RenderChart(res *session.Result, width, height int) string {
	if width < minChartWidth {
		width = minChartWidth
	}
	if height < minChartHeight {
		height = minChartHeight
	}

	var values []float64
	var marks []rune
	for _, s := range res.Series.Samples() {
		values = append(values, s.Price)
		marks = append(marks, historyMark)
	}
	for _, p := range res.Projection {
		values = append(values, p.Price)
		marks = append(marks, projectionMark)
	}

	high, low, err := calculator.PriceRange(values)
	if err != nil {
		return ""
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}

	total := len(values)
	for i, v := range values {
		col := 0
		if total > 1 {
			col = int(math.Round(float64(i) * float64(width-1) / float64(total-1)))
		}
		pos, err := calculator.Position(v, high, low)
		if err != nil {
			continue
		}
		row := int(math.Round((1 - pos) * float64(height-1)))
		grid[row][col] = marks[i]
	}

	labels := make([]string, height)
	labels[0] = money(high)
	labels[height-1] = money(low)
	labels[height/2] = money((high + low) / 2)
	labelWidth := 0
	for _, l := range labels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	var b strings.Builder
	for r, line := range grid {
		b.WriteString(strings.Repeat(" ", labelWidth-len(labels[r])))
		b.WriteString(labels[r])
		b.WriteString(" |")
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteString("\n")
	}

	pad := strings.Repeat(" ", labelWidth+1)
	b.WriteString(pad + "+" + strings.Repeat("-", width) + "\n")

	if first, ok := firstTime(res); ok {
		start := first.Format(dateLayout)
		end := res.Projection[len(res.Projection)-1].Time.Format(dateLayout)
		gap := width - len(start) - len(end)
		if gap < 1 {
			gap = 1
		}
		b.WriteString(pad + " " + start + strings.Repeat(" ", gap) + end + "\n")
	}
	b.WriteString(pad + " " + string(historyMark) + " historical  " + string(projectionMark) + " predicted\n")
	return b.String()
}

func firstTime(res *session.Result) (time.Time, bool) {
	samples := res.Series.Samples()
	if len(samples) == 0 || len(res.Projection) == 0 {
		return time.Time{}, false
	}
	return samples[0].Time, true
}
