package summary

import (
	"fmt"
	"testing"
	"time"

	"github.com/rupeeroute/rupee-route/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(id string, day int, amount float64, txnType model.TransactionType, category model.Category) model.CategorizedTransaction {
	return model.CategorizedTransaction{
		Transaction: model.Transaction{
			ID:     id,
			Date:   time.Date(2025, 6, day, 10, 0, 0, 0, time.UTC),
			Amount: amount,
			Type:   txnType,
		},
		Category: category,
		Tags:     []string{},
	}
}

func debit(id string, day int, amount float64, category model.Category) model.CategorizedTransaction {
	return txn(id, day, amount, model.TypeDebit, category)
}

func credit(id string, day int, amount float64, category model.Category) model.CategorizedTransaction {
	return txn(id, day, amount, model.TypeCredit, category)
}

func TestGenerate_Totals(t *testing.T) {
	transactions := []model.CategorizedTransaction{
		credit("t1", 1, 50000, model.CategoryIncome),
		credit("t2", 5, 1200, model.CategoryTransfer), // not income
		debit("t3", 10, -3000, model.CategoryFoodDining),
		debit("t4", 12, 7000, model.CategoryShopping),
	}

	s := Generate(transactions, nil)

	assert.Equal(t, 50000.0, s.TotalIncome)
	assert.Equal(t, 10000.0, s.TotalExpenses)
	assert.Equal(t, 40000.0, s.NetSavings)
	assert.Equal(t, 80.0, s.SavingsRate)
}

func TestGenerate_ZeroIncome(t *testing.T) {
	s := Generate([]model.CategorizedTransaction{
		debit("t1", 1, 500, model.CategoryFoodDining),
	}, nil)

	assert.Equal(t, 0.0, s.TotalIncome)
	assert.Equal(t, -500.0, s.NetSavings)
	assert.Equal(t, 0.0, s.SavingsRate)
}

func TestGenerate_SavingsRateRounding(t *testing.T) {
	s := Generate([]model.CategorizedTransaction{
		credit("t1", 1, 3000, model.CategoryIncome),
		debit("t2", 2, 1000, model.CategoryOther),
	}, nil)

	// 2000/3000 = 66.666...%, rounded to one decimal.
	assert.Equal(t, 66.7, s.SavingsRate)
}

func TestGenerate_EmptyInput(t *testing.T) {
	s := Generate(nil, nil)

	assert.Equal(t, model.Period{}, s.Period)
	assert.Equal(t, 0.0, s.TotalExpenses)
	assert.Empty(t, s.CategoryBreakdown)
	assert.Empty(t, s.TopMerchants)
	assert.Empty(t, s.Trends)
	assert.Empty(t, s.Anomalies)
}

func TestGenerate_Period(t *testing.T) {
	transactions := []model.CategorizedTransaction{
		debit("t1", 14, 100, model.CategoryOther),
		credit("t2", 3, 5000, model.CategoryIncome),
		debit("t3", 27, 200, model.CategoryOther),
	}

	s := Generate(transactions, nil)

	// Bounds span the full input, credits included.
	assert.Equal(t, "2025-06-03", s.Period.From)
	assert.Equal(t, "2025-06-27", s.Period.To)
}

func TestGenerate_BreakdownSortAndPercentage(t *testing.T) {
	transactions := []model.CategorizedTransaction{
		debit("t1", 1, 1000, model.CategoryFoodDining),
		debit("t2", 2, 500, model.CategoryFoodDining),
		debit("t3", 3, 3000, model.CategoryShopping),
		debit("t4", 4, 500, model.CategoryTransport),
	}

	s := Generate(transactions, nil)
	require.Len(t, s.CategoryBreakdown, 3)

	assert.Equal(t, model.CategoryShopping, s.CategoryBreakdown[0].Category)
	assert.Equal(t, 60.0, s.CategoryBreakdown[0].Percentage)
	assert.Equal(t, model.CategoryFoodDining, s.CategoryBreakdown[1].Category)
	assert.Equal(t, 2, s.CategoryBreakdown[1].TransactionCount)
	assert.Equal(t, 30.0, s.CategoryBreakdown[1].Percentage)
	assert.Equal(t, model.CategoryTransport, s.CategoryBreakdown[2].Category)
}

func TestGenerate_BreakdownTies(t *testing.T) {
	transactions := []model.CategorizedTransaction{
		debit("t1", 1, 500, model.CategoryTransport),
		debit("t2", 2, 500, model.CategoryGroceries),
	}

	s := Generate(transactions, nil)
	require.Len(t, s.CategoryBreakdown, 2)

	// Equal amounts order by category name.
	assert.Equal(t, model.CategoryGroceries, s.CategoryBreakdown[0].Category)
	assert.Equal(t, model.CategoryTransport, s.CategoryBreakdown[1].Category)
}

func TestGenerate_ChangePercentAndTrend(t *testing.T) {
	current := []model.CategorizedTransaction{
		debit("c1", 1, 1500, model.CategoryFoodDining),
		debit("c2", 2, 400, model.CategoryTransport),
		debit("c3", 3, 1000, model.CategoryGroceries),
		debit("c4", 4, 300, model.CategoryShopping), // no prior spend
	}
	previous := []model.CategorizedTransaction{
		debit("p1", 1, 1000, model.CategoryFoodDining),
		debit("p2", 2, 800, model.CategoryTransport),
		debit("p3", 3, 980, model.CategoryGroceries),
	}

	s := Generate(current, previous)

	byCategory := make(map[model.Category]model.CategoryBreakdown)
	for _, entry := range s.CategoryBreakdown {
		byCategory[entry.Category] = entry
	}

	food := byCategory[model.CategoryFoodDining]
	assert.Equal(t, 50.0, food.ChangePercent)
	assert.Equal(t, model.TrendUp, food.Trend)

	transport := byCategory[model.CategoryTransport]
	assert.Equal(t, -50.0, transport.ChangePercent)
	assert.Equal(t, model.TrendDown, transport.Trend)

	// +2% is inside the stable band.
	groceries := byCategory[model.CategoryGroceries]
	assert.Equal(t, 2.0, groceries.ChangePercent)
	assert.Equal(t, model.TrendStable, groceries.Trend)

	// No prior spend: 0% change by policy.
	shopping := byCategory[model.CategoryShopping]
	assert.Equal(t, 0.0, shopping.ChangePercent)
	assert.Equal(t, model.TrendStable, shopping.Trend)
}

func TestGenerate_TrendBandUsesUnroundedChange(t *testing.T) {
	current := []model.CategorizedTransaction{
		debit("c1", 1, 1053, model.CategoryFoodDining), // +5.3%
		debit("c2", 2, 947, model.CategoryTransport),   // -5.3%
		debit("c3", 3, 1050, model.CategoryGroceries),  // +5.0% exactly
	}
	previous := []model.CategorizedTransaction{
		debit("p1", 1, 1000, model.CategoryFoodDining),
		debit("p2", 2, 1000, model.CategoryTransport),
		debit("p3", 3, 1000, model.CategoryGroceries),
	}

	s := Generate(current, previous)

	byCategory := make(map[model.Category]model.CategoryBreakdown)
	for _, entry := range s.CategoryBreakdown {
		byCategory[entry.Category] = entry
	}

	// +5.3% is outside the band even though it rounds down to 5.
	food := byCategory[model.CategoryFoodDining]
	assert.Equal(t, model.TrendUp, food.Trend)
	assert.Equal(t, 5.0, food.ChangePercent)

	transport := byCategory[model.CategoryTransport]
	assert.Equal(t, model.TrendDown, transport.Trend)
	assert.Equal(t, -5.0, transport.ChangePercent)

	// Exactly +5% sits on the band edge and stays stable.
	groceries := byCategory[model.CategoryGroceries]
	assert.Equal(t, model.TrendStable, groceries.Trend)

	// Non-stable entries surface in the trends list.
	trendCategories := make([]model.Category, 0, len(s.Trends))
	for _, trend := range s.Trends {
		trendCategories = append(trendCategories, trend.Category)
	}
	assert.Contains(t, trendCategories, model.CategoryFoodDining)
	assert.Contains(t, trendCategories, model.CategoryTransport)
	assert.NotContains(t, trendCategories, model.CategoryGroceries)
}

func TestGenerate_TrendMessages(t *testing.T) {
	current := []model.CategorizedTransaction{
		debit("c1", 1, 1500, model.CategoryFoodDining),
		debit("c2", 2, 400, model.CategoryTransport),
	}
	previous := []model.CategorizedTransaction{
		debit("p1", 1, 1000, model.CategoryFoodDining),
		debit("p2", 2, 800, model.CategoryTransport),
	}

	s := Generate(current, previous)
	require.Len(t, s.Trends, 2)

	// Trends follow breakdown order: largest spend first.
	up := s.Trends[0]
	assert.Equal(t, model.CategoryFoodDining, up.Category)
	assert.Equal(t, model.TrendUp, up.Direction)
	assert.Equal(t, "FOOD DINING spending increased by 50%", up.Message)
	assert.Equal(t, "खाना-पीना खर्च बढ़ा 50%", up.MessageHi)

	down := s.Trends[1]
	assert.Equal(t, model.TrendDown, down.Direction)
	assert.Equal(t, "TRANSPORT spending decreased by 50%", down.Message)
	assert.Equal(t, "यातायात खर्च घटा 50%", down.MessageHi)
}

func TestGenerate_TrendsCapped(t *testing.T) {
	categories := []model.Category{
		model.CategoryFoodDining,
		model.CategoryGroceries,
		model.CategoryShopping,
		model.CategoryTransport,
		model.CategoryUtilities,
		model.CategoryEntertainment,
		model.CategoryHealth,
	}

	current := make([]model.CategorizedTransaction, 0, len(categories))
	previous := make([]model.CategorizedTransaction, 0, len(categories))
	for i, category := range categories {
		current = append(current, debit(fmt.Sprintf("c%d", i), 1, 2000, category))
		previous = append(previous, debit(fmt.Sprintf("p%d", i), 1, 1000, category))
	}

	s := Generate(current, previous)

	assert.Len(t, s.Trends, 5)
}

func TestGenerate_AnomalyMedium(t *testing.T) {
	transactions := []model.CategorizedTransaction{
		debit("t1", 1, 10, model.CategoryFoodDining),
		debit("t2", 2, 10, model.CategoryFoodDining),
		debit("t3", 3, 10, model.CategoryFoodDining),
		debit("t4", 4, 500, model.CategoryFoodDining),
	}

	s := Generate(transactions, nil)
	require.Len(t, s.Anomalies, 1)

	// Mean 132.5 includes the outlier: 500 clears 3x but not 5x.
	anomaly := s.Anomalies[0]
	assert.Equal(t, "t4", anomaly.TransactionID)
	assert.Equal(t, model.AnomalyUnusualAmount, anomaly.Type)
	assert.Equal(t, model.SeverityMedium, anomaly.Severity)
	assert.Equal(t, "Unusually high FOOD_DINING expense: ₹500", anomaly.Message)
	assert.Contains(t, anomaly.MessageHi, "खाना-पीना")
}

func TestGenerate_AnomalyHigh(t *testing.T) {
	transactions := []model.CategorizedTransaction{
		debit("t1", 1, 10, model.CategoryShopping),
		debit("t2", 1, 10, model.CategoryShopping),
		debit("t3", 1, 10, model.CategoryShopping),
		debit("t4", 1, 10, model.CategoryShopping),
		debit("t5", 1, 10, model.CategoryShopping),
		debit("t6", 2, 300, model.CategoryShopping),
	}

	s := Generate(transactions, nil)
	require.Len(t, s.Anomalies, 1)

	assert.Equal(t, "t6", s.Anomalies[0].TransactionID)
	assert.Equal(t, model.SeverityHigh, s.Anomalies[0].Severity)
}

func TestGenerate_NoAnomalyForUniformSpend(t *testing.T) {
	transactions := []model.CategorizedTransaction{
		debit("t1", 1, 100, model.CategoryGroceries),
		debit("t2", 2, 120, model.CategoryGroceries),
		debit("t3", 3, 110, model.CategoryGroceries),
	}

	s := Generate(transactions, nil)

	assert.Empty(t, s.Anomalies)
}

func TestGenerate_TopMerchants(t *testing.T) {
	transactions := []model.CategorizedTransaction{
		debit("t1", 1, 500, model.CategoryFoodDining),
		debit("t2", 2, 300, model.CategoryFoodDining),
		debit("t3", 3, 2000, model.CategoryShopping),
	}
	transactions[0].MerchantName = "Swiggy"
	transactions[1].MerchantName = "Swiggy"
	transactions[2].MerchantName = "Amazon"

	s := Generate(transactions, nil)
	require.Len(t, s.TopMerchants, 2)

	assert.Equal(t, "Amazon", s.TopMerchants[0].MerchantName)
	assert.Equal(t, 2000.0, s.TopMerchants[0].TotalAmount)

	swiggy := s.TopMerchants[1]
	assert.Equal(t, 800.0, swiggy.TotalAmount)
	assert.Equal(t, 2, swiggy.TransactionCount)
	assert.Equal(t, 400.0, swiggy.AverageAmount)
	assert.Equal(t, model.CategoryFoodDining, swiggy.Category)
}

func TestGenerate_TopMerchantsCapped(t *testing.T) {
	transactions := make([]model.CategorizedTransaction, 0, 12)
	for i := 0; i < 12; i++ {
		entry := debit(fmt.Sprintf("t%d", i), 1, float64(100+i), model.CategoryOther)
		entry.MerchantName = fmt.Sprintf("Merchant %d", i)
		transactions = append(transactions, entry)
	}

	s := Generate(transactions, nil)

	assert.Len(t, s.TopMerchants, 10)
	assert.Equal(t, "Merchant 11", s.TopMerchants[0].MerchantName)
}

func TestGenerate_MerchantKeyFromDescription(t *testing.T) {
	long := debit("t1", 1, 250, model.CategoryOther)
	long.Description = "POS 412398 SOME VERY LONG DESCRIPTIVE NARRATION FIELD"

	s := Generate([]model.CategorizedTransaction{long}, nil)
	require.Len(t, s.TopMerchants, 1)

	assert.Equal(t, "POS 412398 SOME VERY LONG DESC", s.TopMerchants[0].MerchantName)
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0"},
		{123, "123"},
		{1234, "1,234"},
		{99999, "99,999"},
		{123456, "1,23,456"},
		{1234567, "12,34,567"},
		{12345678, "1,23,45,678"},
		{1234.56, "1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatINR(tt.amount))
		})
	}
}
