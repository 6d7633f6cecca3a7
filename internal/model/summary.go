package model

// TrendDirection classifies a category's period-over-period spend change.
type TrendDirection string

// Trend direction constants.
const (
	TrendUp     TrendDirection = "UP"
	TrendDown   TrendDirection = "DOWN"
	TrendStable TrendDirection = "STABLE"
)

// AnomalyType identifies the kind of spending anomaly detected.
type AnomalyType string

// Anomaly type constants. Only UNUSUAL_AMOUNT is currently produced; the
// others are reserved for future detectors.
const (
	AnomalyUnusualAmount   AnomalyType = "UNUSUAL_AMOUNT"
	AnomalyNewMerchant     AnomalyType = "NEW_MERCHANT"
	AnomalyUnusualCategory AnomalyType = "UNUSUAL_CATEGORY"
	AnomalyUnusualTime     AnomalyType = "UNUSUAL_TIME"
)

// AnomalySeverity grades how far an anomaly deviates from the norm.
type AnomalySeverity string

// Anomaly severity constants.
const (
	SeverityLow    AnomalySeverity = "LOW"
	SeverityMedium AnomalySeverity = "MEDIUM"
	SeverityHigh   AnomalySeverity = "HIGH"
)

// InsightType classifies a generated insight message.
type InsightType string

// Insight type constants.
const (
	InsightPositive InsightType = "POSITIVE"
	InsightWarning  InsightType = "WARNING"
	InsightInfo     InsightType = "INFO"
)

// Period holds the calendar-date bounds of a summary, derived from the
// min and max transaction dates across the full input.
type Period struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// CategoryBreakdown is one category's share of the period's spending.
// ChangePercent is rounded to the nearest whole number.
type CategoryBreakdown struct {
	Category         Category       `json:"category"`
	CategoryNameHi   string         `json:"category_name_hi"`
	Icon             string         `json:"icon"`
	Trend            TrendDirection `json:"trend"`
	Amount           float64        `json:"amount"`
	Percentage       float64        `json:"percentage"`
	ChangePercent    float64        `json:"change_percent"`
	TransactionCount int            `json:"transaction_count"`
}

// MerchantSummary aggregates a single merchant's debits for the period.
type MerchantSummary struct {
	MerchantName     string   `json:"merchant_name"`
	Category         Category `json:"category"`
	TotalAmount      float64  `json:"total_amount"`
	AverageAmount    float64  `json:"average_amount"`
	TransactionCount int      `json:"transaction_count"`
}

// SpendingTrend is a notable period-over-period movement in one category.
type SpendingTrend struct {
	Category      Category       `json:"category"`
	Direction     TrendDirection `json:"direction"`
	Message       string         `json:"message"`
	MessageHi     string         `json:"message_hi"`
	ChangePercent float64        `json:"change_percent"`
}

// SpendingAnomaly flags a transaction that deviates sharply from its
// category's typical spend.
type SpendingAnomaly struct {
	TransactionID string          `json:"transaction_id"`
	Type          AnomalyType     `json:"type"`
	Severity      AnomalySeverity `json:"severity"`
	Message       string          `json:"message"`
	MessageHi     string          `json:"message_hi"`
}

// SpendingInsight is a human-readable observation about the period.
type SpendingInsight struct {
	Type            InsightType `json:"type"`
	Icon            string      `json:"icon"`
	Message         string      `json:"message"`
	MessageHi       string      `json:"message_hi"`
	SuggestedAction string      `json:"suggested_action,omitempty"`
	Actionable      bool        `json:"actionable"`
}

// SpendingSummary is the full report over one period of categorized
// transactions. SavingsRate is rounded to one decimal place.
type SpendingSummary struct {
	Period            Period              `json:"period"`
	CategoryBreakdown []CategoryBreakdown `json:"category_breakdown"`
	TopMerchants      []MerchantSummary   `json:"top_merchants"`
	Trends            []SpendingTrend     `json:"trends"`
	Anomalies         []SpendingAnomaly   `json:"anomalies"`
	Insights          []SpendingInsight   `json:"insights"`
	TotalIncome       float64             `json:"total_income"`
	TotalExpenses     float64             `json:"total_expenses"`
	NetSavings        float64             `json:"net_savings"`
	SavingsRate       float64             `json:"savings_rate"`
}
