// Package summary computes spending reports over categorized transactions.
//
// Generate is a pure function of its inputs: no I/O, no mutation. Every
// ratio guards its zero-denominator case explicitly — zero income, zero
// prior-period spend and zero transactions all have documented defaults
// instead of NaN.
package summary

import (
	"fmt"
	"math"
	"sort"

	"github.com/rupeeroute/rupee-route/internal/model"
)

// Product-tuning constants. Values carried over from the original policy;
// do not change without product sign-off.
const (
	// trendBandPercent is the ±band inside which a category's
	// period-over-period change counts as STABLE.
	trendBandPercent = 5.0

	// anomalyMeanMultiplier flags a transaction whose amount exceeds this
	// multiple of its category mean; anomalyHighMultiplier upgrades the
	// severity to HIGH.
	anomalyMeanMultiplier = 3.0
	anomalyHighMultiplier = 5.0

	topMerchantLimit = 10
	trendLimit       = 5
	merchantKeyRunes = 30
)

// Generate builds a SpendingSummary for the given period. previous may be
// nil; without it every category trend is STABLE with 0% change.
// SavingsRate is rounded to one decimal, ChangePercent to the nearest
// whole number.
func Generate(transactions, previous []model.CategorizedTransaction) model.SpendingSummary {
	debits := make([]model.CategorizedTransaction, 0, len(transactions))
	credits := make([]model.CategorizedTransaction, 0)
	for _, txn := range transactions {
		if txn.Type == model.TypeDebit {
			debits = append(debits, txn)
		} else {
			credits = append(credits, txn)
		}
	}

	var totalExpenses float64
	for _, txn := range debits {
		totalExpenses += math.Abs(txn.Amount)
	}

	// Income counts only CREDIT transactions categorized INCOME. Credited
	// refunds and the like are deliberately excluded.
	var totalIncome float64
	for _, txn := range credits {
		if txn.Category == model.CategoryIncome {
			totalIncome += txn.Amount
		}
	}

	netSavings := totalIncome - totalExpenses
	savingsRate := 0.0
	if totalIncome > 0 {
		savingsRate = netSavings / totalIncome * 100
	}

	breakdown := buildBreakdown(debits, previous, totalExpenses)

	return model.SpendingSummary{
		Period:            periodBounds(transactions),
		TotalIncome:       totalIncome,
		TotalExpenses:     totalExpenses,
		NetSavings:        netSavings,
		SavingsRate:       math.Round(savingsRate*10) / 10,
		CategoryBreakdown: breakdown,
		TopMerchants:      topMerchants(debits),
		Trends:            buildTrends(breakdown),
		Anomalies:         detectAnomalies(debits),
		Insights:          generateInsights(breakdown, savingsRate),
	}
}

type categoryTotal struct {
	amount float64
	count  int
}

func buildBreakdown(debits, previous []model.CategorizedTransaction, totalExpenses float64) []model.CategoryBreakdown {
	totals := make(map[model.Category]categoryTotal)
	for _, txn := range debits {
		t := totals[txn.Category]
		t.amount += math.Abs(txn.Amount)
		t.count++
		totals[txn.Category] = t
	}

	prevTotals := make(map[model.Category]float64)
	for _, txn := range previous {
		if txn.Type == model.TypeDebit {
			prevTotals[txn.Category] += math.Abs(txn.Amount)
		}
	}

	breakdown := make([]model.CategoryBreakdown, 0, len(totals))
	for category, total := range totals {
		// No prior spend in a category is 0% change by policy, not a
		// divide-by-zero blowup.
		changePercent := 0.0
		if prev, ok := prevTotals[category]; ok && prev > 0 {
			changePercent = (total.amount - prev) / prev * 100
		}

		// Classify on the raw percent; rounding is display-only.
		trend := model.TrendStable
		switch {
		case changePercent > trendBandPercent:
			trend = model.TrendUp
		case changePercent < -trendBandPercent:
			trend = model.TrendDown
		}
		changePercent = math.Round(changePercent)

		percentage := 0.0
		if totalExpenses > 0 {
			percentage = total.amount / totalExpenses * 100
		}

		breakdown = append(breakdown, model.CategoryBreakdown{
			Category:         category,
			CategoryNameHi:   category.NameHi(),
			Icon:             category.Icon(),
			Amount:           total.amount,
			Percentage:       percentage,
			TransactionCount: total.count,
			Trend:            trend,
			ChangePercent:    changePercent,
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount != breakdown[j].Amount {
			return breakdown[i].Amount > breakdown[j].Amount
		}
		return breakdown[i].Category < breakdown[j].Category
	})

	return breakdown
}

func topMerchants(debits []model.CategorizedTransaction) []model.MerchantSummary {
	totals := make(map[string]*model.MerchantSummary)
	for _, txn := range debits {
		name := txn.MerchantName
		if name == "" {
			name = truncateRunes(txn.Description, merchantKeyRunes)
		}
		entry, ok := totals[name]
		if !ok {
			entry = &model.MerchantSummary{
				MerchantName: name,
				Category:     txn.Category,
			}
			totals[name] = entry
		}
		entry.TotalAmount += math.Abs(txn.Amount)
		entry.TransactionCount++
	}

	merchants := make([]model.MerchantSummary, 0, len(totals))
	for _, entry := range totals {
		entry.AverageAmount = entry.TotalAmount / float64(entry.TransactionCount)
		merchants = append(merchants, *entry)
	}

	sort.Slice(merchants, func(i, j int) bool {
		if merchants[i].TotalAmount != merchants[j].TotalAmount {
			return merchants[i].TotalAmount > merchants[j].TotalAmount
		}
		return merchants[i].MerchantName < merchants[j].MerchantName
	})

	if len(merchants) > topMerchantLimit {
		merchants = merchants[:topMerchantLimit]
	}
	return merchants
}

// buildTrends surfaces non-stable breakdown entries in breakdown order
// (largest spend first), capped to trendLimit.
func buildTrends(breakdown []model.CategoryBreakdown) []model.SpendingTrend {
	trends := make([]model.SpendingTrend, 0, trendLimit)
	for _, entry := range breakdown {
		if entry.Trend == model.TrendStable {
			continue
		}
		if len(trends) == trendLimit {
			break
		}

		direction := "increased"
		directionHi := "बढ़ा"
		if entry.Trend == model.TrendDown {
			direction = "decreased"
			directionHi = "घटा"
		}

		trends = append(trends, model.SpendingTrend{
			Category:      entry.Category,
			Direction:     entry.Trend,
			ChangePercent: entry.ChangePercent,
			Message: fmt.Sprintf("%s spending %s by %.0f%%",
				entry.Category.DisplayName(), direction, math.Abs(entry.ChangePercent)),
			MessageHi: fmt.Sprintf("%s खर्च %s %.0f%%",
				entry.CategoryNameHi, directionHi, math.Abs(entry.ChangePercent)),
		})
	}
	return trends
}

// detectAnomalies flags debits whose amount exceeds anomalyMeanMultiplier
// times their category mean. The mean includes the flagged transaction
// itself.
func detectAnomalies(debits []model.CategorizedTransaction) []model.SpendingAnomaly {
	sums := make(map[model.Category]categoryTotal)
	for _, txn := range debits {
		t := sums[txn.Category]
		t.amount += math.Abs(txn.Amount)
		t.count++
		sums[txn.Category] = t
	}

	means := make(map[model.Category]float64, len(sums))
	for category, t := range sums {
		means[category] = t.amount / float64(t.count)
	}

	anomalies := make([]model.SpendingAnomaly, 0)
	for _, txn := range debits {
		amount := math.Abs(txn.Amount)
		mean := means[txn.Category]
		if amount <= mean*anomalyMeanMultiplier {
			continue
		}

		severity := model.SeverityMedium
		if amount > mean*anomalyHighMultiplier {
			severity = model.SeverityHigh
		}

		anomalies = append(anomalies, model.SpendingAnomaly{
			TransactionID: txn.ID,
			Type:          model.AnomalyUnusualAmount,
			Severity:      severity,
			Message: fmt.Sprintf("Unusually high %s expense: ₹%s",
				txn.Category, formatINR(amount)),
			MessageHi: fmt.Sprintf("असामान्य रूप से अधिक %s खर्च: ₹%s",
				txn.Category.NameHi(), formatINR(amount)),
		})
	}
	return anomalies
}

// periodBounds finds the min and max transaction date across the full
// input, credits included. Empty input yields an empty period.
func periodBounds(transactions []model.CategorizedTransaction) model.Period {
	if len(transactions) == 0 {
		return model.Period{}
	}

	minDate := transactions[0].Date
	maxDate := transactions[0].Date
	for _, txn := range transactions[1:] {
		if txn.Date.Before(minDate) {
			minDate = txn.Date
		}
		if txn.Date.After(maxDate) {
			maxDate = txn.Date
		}
	}

	return model.Period{
		From: minDate.Format("2006-01-02"),
		To:   maxDate.Format("2006-01-02"),
	}
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// formatINR renders an amount with Indian digit grouping (12,34,567).
// Fractional paise are dropped for display.
func formatINR(amount float64) string {
	whole := fmt.Sprintf("%.0f", math.Floor(amount))
	if len(whole) <= 3 {
		return whole
	}

	head := whole[:len(whole)-3]
	out := "," + whole[len(whole)-3:]
	for len(head) > 2 {
		out = "," + head[len(head)-2:] + out
		head = head[:len(head)-2]
	}
	return head + out
}
