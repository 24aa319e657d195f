package report

import (
	"fmt"
	"strings"

	"TrendCast/internal/session"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// money renders v with two decimals, rounding half away from zero.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatSummary is the two-line result text shown after a prediction.
func FormatSummary(res *session.Result) string {
	return fmt.Sprintf("Predicted price after %d days: $%s\nExpected change: %s%%\n",
		res.Horizon, money(res.FinalPrice), money(res.ChangePct))
}

// FormatProjection lists each projected day and price.
func FormatProjection(res *session.Result) string {
	var b strings.Builder
	b.WriteString("Date        Predicted\n")
	for _, p := range res.Projection {
		b.WriteString(fmt.Sprintf("%s  $%s\n", p.Time.Format(dateLayout), money(p.Price)))
	}
	return b.String()
}

// FormatReport combines history details, chart and summary.
func FormatReport(res *session.Result, chartWidth, chartHeight int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s | %d samples from %s", res.Symbol, res.Series.Len(), res.Series.Source))
	if last, ok := res.Series.Last(); ok {
		b.WriteString(fmt.Sprintf(" | last close %s on %s", money(last.Price), last.Time.Format(dateLayout)))
	}
	b.WriteString("\n")
	if res.SMA > 0 {
		b.WriteString(fmt.Sprintf("SMA%d: %s\n", res.SMAPeriod, money(res.SMA)))
	}
	b.WriteString("\n")

	b.WriteString(RenderChart(res, chartWidth, chartHeight))
	b.WriteString("\n")
	b.WriteString(FormatSummary(res))
	return b.String()
}
