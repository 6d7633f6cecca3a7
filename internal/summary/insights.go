package summary

import (
	"fmt"

	"github.com/rupeeroute/rupee-route/internal/model"
)

// Insight thresholds. Product-tuning constants; values carried over from
// the original policy.
const (
	goodSavingsRatePercent = 30.0
	lowSavingsRatePercent  = 10.0
	topCategoryShareAlert  = 40.0
	foodShareAlertPercent  = 25.0
	subscriptionCountAlert = 3
)

// generateInsights appends one insight per independently-checked condition,
// in a fixed order. savingsRate is the unrounded value.
func generateInsights(breakdown []model.CategoryBreakdown, savingsRate float64) []model.SpendingInsight {
	insights := make([]model.SpendingInsight, 0)

	if savingsRate >= goodSavingsRatePercent {
		insights = append(insights, model.SpendingInsight{
			Type: model.InsightPositive,
			Icon: "🌟",
			Message: fmt.Sprintf("Great savings rate of %.0f%%! You're saving more than 70%% of people in your income bracket.",
				savingsRate),
			MessageHi: fmt.Sprintf("शानदार बचत दर %.0f%%! आप अपनी आय वर्ग में 70%% लोगों से ज्यादा बचत कर रहे हैं।",
				savingsRate),
			Actionable: false,
		})
	} else if savingsRate < lowSavingsRatePercent {
		insights = append(insights, model.SpendingInsight{
			Type: model.InsightWarning,
			Icon: "⚠️",
			Message: fmt.Sprintf("Low savings rate of %.0f%%. Consider reducing discretionary spending.",
				savingsRate),
			MessageHi: fmt.Sprintf("कम बचत दर %.0f%%। विवेकाधीन खर्च कम करने पर विचार करें।",
				savingsRate),
			Actionable:      true,
			SuggestedAction: "Review entertainment and shopping expenses",
		})
	}

	if len(breakdown) > 0 && breakdown[0].Percentage > topCategoryShareAlert {
		top := breakdown[0]
		insights = append(insights, model.SpendingInsight{
			Type: model.InsightInfo,
			Icon: top.Icon,
			Message: fmt.Sprintf("%s is your biggest expense category (%.0f%% of spending).",
				top.Category.DisplayName(), top.Percentage),
			MessageHi: fmt.Sprintf("%s आपकी सबसे बड़ी खर्च श्रेणी है (खर्च का %.0f%%)।",
				top.CategoryNameHi, top.Percentage),
			Actionable: false,
		})
	}

	for _, entry := range breakdown {
		if entry.Category != model.CategoryFoodDining {
			continue
		}
		if entry.Percentage > foodShareAlertPercent {
			insights = append(insights, model.SpendingInsight{
				Type: model.InsightWarning,
				Icon: "🍔",
				Message: fmt.Sprintf("Food & dining is %.0f%% of your spending. Consider meal planning.",
					entry.Percentage),
				MessageHi: fmt.Sprintf("खाना %.0f%% खर्च है। भोजन योजना पर विचार करें।",
					entry.Percentage),
				Actionable:      true,
				SuggestedAction: "Try cooking at home more often",
			})
		}
		break
	}

	for _, entry := range breakdown {
		if entry.Category != model.CategorySubscription {
			continue
		}
		if entry.TransactionCount > subscriptionCountAlert {
			insights = append(insights, model.SpendingInsight{
				Type: model.InsightInfo,
				Icon: "📅",
				Message: fmt.Sprintf("You have %d active subscriptions. Review if you're using all of them.",
					entry.TransactionCount),
				MessageHi: fmt.Sprintf("आपके %d सक्रिय सब्सक्रिप्शन हैं। देखें कि आप सभी का उपयोग कर रहे हैं या नहीं।",
					entry.TransactionCount),
				Actionable:      true,
				SuggestedAction: "Cancel unused subscriptions",
			})
		}
		break
	}

	return insights
}
