package report

import (
	"fmt"
	"strings"

	"github.com/rupeeroute/rupee-route/internal/model"
)

// Formatter renders a SpendingSummary for terminal display.
type Formatter struct {
	styles *Styles
}

// NewFormatter creates a Formatter with default styles.
func NewFormatter() *Formatter {
	return &Formatter{styles: NewStyles()}
}

// Format renders the complete summary.
func (f *Formatter) Format(s *model.SpendingSummary) string {
	if s == nil {
		return f.styles.Error.Render("No summary available")
	}

	sections := []string{
		f.formatHeader(s),
		f.formatTotals(s),
	}

	if len(s.CategoryBreakdown) > 0 {
		sections = append(sections, f.formatBreakdown(s.CategoryBreakdown))
	}
	if len(s.TopMerchants) > 0 {
		sections = append(sections, f.formatMerchants(s.TopMerchants))
	}
	if len(s.Trends) > 0 {
		sections = append(sections, f.formatTrends(s.Trends))
	}
	if len(s.Anomalies) > 0 {
		sections = append(sections, f.formatAnomalies(s.Anomalies))
	}
	if len(s.Insights) > 0 {
		sections = append(sections, f.formatInsights(s.Insights))
	}

	return strings.Join(sections, "\n\n")
}

func (f *Formatter) formatHeader(s *model.SpendingSummary) string {
	title := f.styles.Title.Render("Spending Summary")
	if s.Period.From == "" {
		return title
	}
	period := f.styles.Subtitle.Render(fmt.Sprintf("%s — %s", s.Period.From, s.Period.To))
	return title + "\n" + period
}

func (f *Formatter) formatTotals(s *model.SpendingSummary) string {
	savingsStyle := f.styles.Success
	if s.NetSavings < 0 {
		savingsStyle = f.styles.Error
	}

	lines := []string{
		fmt.Sprintf("Income    %s", f.styles.Amount.Render("₹"+fmt.Sprintf("%.2f", s.TotalIncome))),
		fmt.Sprintf("Expenses  %s", f.styles.Amount.Render("₹"+fmt.Sprintf("%.2f", s.TotalExpenses))),
		fmt.Sprintf("Savings   %s (%.1f%%)", savingsStyle.Render("₹"+fmt.Sprintf("%.2f", s.NetSavings)), s.SavingsRate),
	}
	return f.styles.Box.Render(strings.Join(lines, "\n"))
}

func (f *Formatter) formatBreakdown(breakdown []model.CategoryBreakdown) string {
	var b strings.Builder
	b.WriteString(f.styles.Title.Render("By Category"))
	b.WriteString("\n")

	for _, entry := range breakdown {
		arrow := f.trendArrow(entry.Trend, entry.ChangePercent)
		b.WriteString(fmt.Sprintf("%s %-16s ₹%10.2f  %5.1f%%  %3d txns  %s\n",
			entry.Icon,
			entry.Category.DisplayName(),
			entry.Amount,
			entry.Percentage,
			entry.TransactionCount,
			arrow))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *Formatter) trendArrow(trend model.TrendDirection, changePercent float64) string {
	switch trend {
	case model.TrendUp:
		return f.styles.Error.Render(fmt.Sprintf("▲ %+.0f%%", changePercent))
	case model.TrendDown:
		return f.styles.Success.Render(fmt.Sprintf("▼ %+.0f%%", changePercent))
	default:
		return f.styles.Subtle.Render("—")
	}
}

func (f *Formatter) formatMerchants(merchants []model.MerchantSummary) string {
	var b strings.Builder
	b.WriteString(f.styles.Title.Render("Top Merchants"))
	b.WriteString("\n")

	for i, m := range merchants {
		b.WriteString(fmt.Sprintf("%2d. %-30s ₹%10.2f  %3d txns  avg ₹%.2f\n",
			i+1, m.MerchantName, m.TotalAmount, m.TransactionCount, m.AverageAmount))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *Formatter) formatTrends(trends []model.SpendingTrend) string {
	var b strings.Builder
	b.WriteString(f.styles.Title.Render("Trends"))
	b.WriteString("\n")

	for _, trend := range trends {
		style := f.styles.Error
		if trend.Direction == model.TrendDown {
			style = f.styles.Success
		}
		b.WriteString(style.Render(trend.Message))
		b.WriteString("\n")
		b.WriteString(f.styles.Subtle.Render(trend.MessageHi))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *Formatter) formatAnomalies(anomalies []model.SpendingAnomaly) string {
	var b strings.Builder
	b.WriteString(f.styles.Title.Render("Anomalies"))
	b.WriteString("\n")

	for _, anomaly := range anomalies {
		style := f.styles.Warning
		if anomaly.Severity == model.SeverityHigh {
			style = f.styles.Error
		}
		b.WriteString(fmt.Sprintf("%s %s\n",
			style.Render(string(anomaly.Severity)),
			anomaly.Message))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *Formatter) formatInsights(insights []model.SpendingInsight) string {
	var b strings.Builder
	b.WriteString(f.styles.Title.Render("Insights"))
	b.WriteString("\n")

	for _, insight := range insights {
		var style = f.styles.Info
		switch insight.Type {
		case model.InsightPositive:
			style = f.styles.Success
		case model.InsightWarning:
			style = f.styles.Warning
		}
		b.WriteString(fmt.Sprintf("%s %s\n", insight.Icon, style.Render(insight.Message)))
		if insight.SuggestedAction != "" {
			b.WriteString(f.styles.Subtle.Render("   → " + insight.SuggestedAction))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
