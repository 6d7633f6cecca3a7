package model

// Category is the closed set of spending categories. Classification always
// lands on one of these values, falling back to CategoryOther.
type Category string

// Spending category constants.
const (
	CategoryFoodDining    Category = "FOOD_DINING"
	CategoryGroceries     Category = "GROCERIES"
	CategoryShopping      Category = "SHOPPING"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryUtilities     Category = "UTILITIES"
	CategoryTransport     Category = "TRANSPORT"
	CategoryHealth        Category = "HEALTH"
	CategoryEducation     Category = "EDUCATION"
	CategoryHousing       Category = "HOUSING"
	CategoryInsurance     Category = "INSURANCE"
	CategoryInvestment    Category = "INVESTMENT"
	CategoryTransfer      Category = "TRANSFER"
	CategoryEMILoan       Category = "EMI_LOAN"
	CategorySubscription  Category = "SUBSCRIPTION"
	CategoryTravel        Category = "TRAVEL"
	CategoryPersonalCare  Category = "PERSONAL_CARE"
	CategoryGiftsCharity  Category = "GIFTS_CHARITY"
	CategoryIncome        Category = "INCOME"
	CategoryRefund        Category = "REFUND"
	CategoryATMWithdrawal Category = "ATM_WITHDRAWAL"
	CategoryOther         Category = "OTHER"
)

// AllCategories lists every category in a stable order. Used to build the
// closed-list AI prompt and to validate AI responses.
var AllCategories = []Category{
	CategoryFoodDining,
	CategoryGroceries,
	CategoryShopping,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryTransport,
	CategoryHealth,
	CategoryEducation,
	CategoryHousing,
	CategoryInsurance,
	CategoryInvestment,
	CategoryTransfer,
	CategoryEMILoan,
	CategorySubscription,
	CategoryTravel,
	CategoryPersonalCare,
	CategoryGiftsCharity,
	CategoryIncome,
	CategoryRefund,
	CategoryATMWithdrawal,
	CategoryOther,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryFoodDining, CategoryGroceries, CategoryShopping,
		CategoryEntertainment, CategoryUtilities, CategoryTransport,
		CategoryHealth, CategoryEducation, CategoryHousing,
		CategoryInsurance, CategoryInvestment, CategoryTransfer,
		CategoryEMILoan, CategorySubscription, CategoryTravel,
		CategoryPersonalCare, CategoryGiftsCharity, CategoryIncome,
		CategoryRefund, CategoryATMWithdrawal, CategoryOther:
		return true
	}
	return false
}

// DisplayName returns the English display form ("FOOD_DINING" -> "FOOD DINING").
func (c Category) DisplayName() string {
	out := make([]byte, len(c))
	for i := 0; i < len(c); i++ {
		if c[i] == '_' {
			out[i] = ' '
		} else {
			out[i] = c[i]
		}
	}
	return string(out)
}

// categoryNamesHi maps each category to its Hindi display name.
var categoryNamesHi = map[Category]string{
	CategoryFoodDining:    "खाना-पीना",
	CategoryGroceries:     "किराना",
	CategoryShopping:      "खरीदारी",
	CategoryEntertainment: "मनोरंजन",
	CategoryUtilities:     "बिल",
	CategoryTransport:     "यातायात",
	CategoryHealth:        "स्वास्थ्य",
	CategoryEducation:     "शिक्षा",
	CategoryHousing:       "घर",
	CategoryInsurance:     "बीमा",
	CategoryInvestment:    "निवेश",
	CategoryTransfer:      "ट्रांसफर",
	CategoryEMILoan:       "EMI/लोन",
	CategorySubscription:  "सदस्यता",
	CategoryTravel:        "यात्रा",
	CategoryPersonalCare:  "पर्सनल केयर",
	CategoryGiftsCharity:  "उपहार/दान",
	CategoryIncome:        "आय",
	CategoryRefund:        "रिफंड",
	CategoryATMWithdrawal: "ATM निकासी",
	CategoryOther:         "अन्य",
}

// categoryIcons maps each category to its display icon.
var categoryIcons = map[Category]string{
	CategoryFoodDining:    "🍔",
	CategoryGroceries:     "🛒",
	CategoryShopping:      "🛍️",
	CategoryEntertainment: "🎬",
	CategoryUtilities:     "💡",
	CategoryTransport:     "🚗",
	CategoryHealth:        "🏥",
	CategoryEducation:     "📚",
	CategoryHousing:       "🏠",
	CategoryInsurance:     "🛡️",
	CategoryInvestment:    "📈",
	CategoryTransfer:      "💸",
	CategoryEMILoan:       "💳",
	CategorySubscription:  "📅",
	CategoryTravel:        "✈️",
	CategoryPersonalCare:  "💇",
	CategoryGiftsCharity:  "🎁",
	CategoryIncome:        "💰",
	CategoryRefund:        "↩️",
	CategoryATMWithdrawal: "🏧",
	CategoryOther:         "📦",
}

// NameHi returns the Hindi display name for the category.
func (c Category) NameHi() string {
	if name, ok := categoryNamesHi[c]; ok {
		return name
	}
	return categoryNamesHi[CategoryOther]
}

// Icon returns the display icon for the category.
func (c Category) Icon() string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return categoryIcons[CategoryOther]
}
