package report

import (
	"strings"
	"testing"
	"time"

	"TrendCast/internal/model"
	"TrendCast/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *session.Result {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	series := model.NewPriceSeries("AAPL")
	series.Source = "static"
	for i, p := range []float64{100, 102, 104} {
		series.Append(day.AddDate(0, 0, i), p)
	}
	return &session.Result{
		Symbol:  "AAPL",
		Horizon: 2,
		Series:  series,
		Projection: model.Projection{
			{Time: day.AddDate(0, 0, 3), Price: 106},
			{Time: day.AddDate(0, 0, 4), Price: 108.005},
		},
		SMAPeriod:  2,
		SMA:        103,
		FinalPrice: 108.005,
		ChangePct:  1.8915,
	}
}

func TestFormatSummary(t *testing.T) {
	got := FormatSummary(sampleResult())
	assert.Equal(t, "Predicted price after 2 days: $108.01\nExpected change: 1.89%\n", got)
}

func TestFormatSummary_Negative(t *testing.T) {
	res := sampleResult()
	res.FinalPrice = 95.5
	res.ChangePct = -4.5
	assert.Contains(t, FormatSummary(res), "Expected change: -4.50%")
}

func TestFormatProjection(t *testing.T) {
	got := FormatProjection(sampleResult())
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2024-01-05  $106.00", lines[1])
	assert.Equal(t, "2024-01-06  $108.01", lines[2])
}

func TestRenderChart(t *testing.T) {
	chart := RenderChart(sampleResult(), 20, 5)
	lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
	require.Len(t, lines, 8) // 5 rows, axis, dates, legend

	assert.True(t, strings.HasPrefix(lines[0], "108.01 |"), lines[0])
	assert.True(t, strings.HasPrefix(lines[4], "100.00 |"), lines[4])
	assert.Contains(t, lines[4], "*", "lowest history point on the bottom row")
	assert.True(t, strings.HasSuffix(lines[0], "+"), "last projection point top right")
	assert.Contains(t, lines[6], "2024-01-02")
	assert.Contains(t, lines[6], "2024-01-06")
	assert.Contains(t, lines[7], "historical")
}

func TestRenderChart_FlatSeries(t *testing.T) {
	res := sampleResult()
	res.Projection = model.Projection{{Time: time.Now(), Price: 50}}
	res.Series = model.NewPriceSeries("FLAT")
	res.Series.Append(time.Now().AddDate(0, 0, -1), 50)

	chart := RenderChart(res, 1, 1) // clamped to the minimum size
	assert.Contains(t, chart, "*")
	assert.Contains(t, chart, "+")
}

func TestFormatReport(t *testing.T) {
	out := FormatReport(sampleResult(), 30, 6)
	assert.Contains(t, out, "AAPL | 3 samples from static | last close 104.00 on 2024-01-04")
	assert.Contains(t, out, "SMA2: 103.00")
	assert.Contains(t, out, "Predicted price after 2 days: $108.01")
}
