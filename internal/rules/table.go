package rules

import (
	"regexp"

	"github.com/rupeeroute/rupee-route/internal/model"
)

// categoryRules is the classification policy. Order matters: ambiguous text
// resolves to the earliest matching rule.
var categoryRules = []Rule{
	{
		Category:    model.CategoryFoodDining,
		SubCategory: "Restaurant",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)swiggy|zomato|foodpanda|uber\s*eats|dominos|pizza\s*hut|mcdonalds|kfc|burger\s*king`),
			regexp.MustCompile(`(?i)restaurant|cafe|hotel|dhaba|biryani|thali|meals`),
			regexp.MustCompile(`(?i)(food|खाना|भोजन|खाने)`),
		},
		MCCCodes:   []string{"5812", "5814", "5811"},
		Keywords:   []string{"swiggy", "zomato", "restaurant", "food", "cafe", "meal", "dinner", "lunch", "breakfast"},
		KeywordsHi: []string{"खाना", "भोजन", "रेस्तरां", "होटल", "ढाबा", "बिरयानी", "थाली"},
	},
	{
		Category: model.CategoryGroceries,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)bigbasket|grofers|blinkit|jiomart|dmart|more|reliance\s*fresh|nature'?s\s*basket`),
			regexp.MustCompile(`(?i)grocery|kirana|supermarket|vegetables|fruits|sabzi`),
			regexp.MustCompile(`(?i)(सब्जी|किराना|राशन)`),
		},
		MCCCodes:   []string{"5411", "5422", "5441"},
		Keywords:   []string{"grocery", "vegetables", "fruits", "supermarket", "kirana", "bigbasket", "blinkit"},
		KeywordsHi: []string{"सब्जी", "किराना", "राशन", "फल", "सब्जीवाला", "दूध", "डेयरी"},
	},
	{
		Category:    model.CategoryShopping,
		SubCategory: "Online",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)amazon|flipkart|myntra|ajio|meesho|snapdeal|shopclues|paytm\s*mall|nykaa`),
			regexp.MustCompile(`(?i)shopping|purchase|order`),
		},
		MCCCodes:   []string{"5311", "5651", "5699", "5999"},
		Keywords:   []string{"amazon", "flipkart", "myntra", "shopping", "purchase", "order"},
		KeywordsHi: []string{"खरीदारी", "ऑर्डर", "शॉपिंग"},
	},
	{
		Category:    model.CategoryShopping,
		SubCategory: "Electronics",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)croma|reliance\s*digital|vijay\s*sales|samsung|apple|mi|realme`),
			regexp.MustCompile(`(?i)mobile|laptop|computer|electronics`),
		},
		MCCCodes:   []string{"5732", "5734"},
		Keywords:   []string{"mobile", "laptop", "electronics", "croma", "phone"},
		KeywordsHi: []string{"मोबाइल", "लैपटॉप", "इलेक्ट्रॉनिक्स"},
	},
	{
		Category: model.CategoryEntertainment,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)netflix|prime\s*video|hotstar|spotify|gaana|youtube|zee5|sonyliv`),
			regexp.MustCompile(`(?i)movie|cinema|pvr|inox|bookmyshow|gaming|playstation|xbox`),
			regexp.MustCompile(`(?i)ott|streaming`),
		},
		MCCCodes:   []string{"7832", "7841", "7922"},
		Keywords:   []string{"netflix", "movie", "cinema", "spotify", "gaming", "entertainment"},
		KeywordsHi: []string{"फिल्म", "सिनेमा", "मनोरंजन", "गेम"},
	},
	{
		Category: model.CategoryUtilities,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)electricity|electric|bijli|power|tata\s*power|adani|bses|discom`),
			regexp.MustCompile(`(?i)water|gas|piped|jal|board`),
			regexp.MustCompile(`(?i)broadband|internet|wifi|airtel|jio|vodafone|bsnl|act\s*fibernet`),
			regexp.MustCompile(`(?i)mobile\s*recharge|prepaid|postpaid`),
			regexp.MustCompile(`(?i)bill\s*payment|utility`),
		},
		MCCCodes:   []string{"4900", "4814"},
		Keywords:   []string{"electricity", "water", "gas", "internet", "bill", "recharge", "broadband"},
		KeywordsHi: []string{"बिजली", "पानी", "गैस", "इंटरनेट", "बिल", "रिचार्ज"},
	},
	{
		Category: model.CategoryTransport,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)uber|ola|rapido|auto|taxi|cab`),
			regexp.MustCompile(`(?i)petrol|diesel|fuel|hp|indian\s*oil|bharat\s*petroleum|cng`),
			regexp.MustCompile(`(?i)metro|railway|irctc|redbus|bus|train|flight`),
			regexp.MustCompile(`(?i)parking|toll|fastag`),
		},
		MCCCodes:   []string{"4111", "4121", "5541", "5542"},
		Keywords:   []string{"uber", "ola", "petrol", "fuel", "metro", "railway", "taxi", "parking", "toll"},
		KeywordsHi: []string{"पेट्रोल", "डीजल", "ऑटो", "टैक्सी", "मेट्रो", "रेलवे", "बस", "पार्किंग"},
	},
	{
		Category: model.CategoryHealth,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)pharmacy|pharma|medplus|apollo|netmeds|1mg|tata\s*1mg|pharm\s*easy`),
			regexp.MustCompile(`(?i)hospital|clinic|doctor|dr\.|diagnostic|lab|blood\s*test|xray|scan`),
			regexp.MustCompile(`(?i)medical|medicine|health|wellness`),
			regexp.MustCompile(`(?i)gym|fitness|cult\.fit|curefit`),
		},
		MCCCodes:   []string{"5912", "8011", "8021", "8099", "7997"},
		Keywords:   []string{"pharmacy", "medical", "hospital", "doctor", "medicine", "gym", "fitness", "health"},
		KeywordsHi: []string{"दवाई", "अस्पताल", "डॉक्टर", "जिम", "फिटनेस", "स्वास्थ्य", "मेडिकल"},
	},
	{
		Category:    model.CategoryEducation,
		SubCategory: "Courses",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)udemy|coursera|unacademy|byju|vedantu|khan\s*academy|whitehat|coding`),
			regexp.MustCompile(`(?i)school|college|university|tuition|coaching|education`),
			regexp.MustCompile(`(?i)book|stationery|exam|test\s*prep`),
		},
		MCCCodes:   []string{"8211", "8220", "8299", "5942"},
		Keywords:   []string{"education", "course", "school", "college", "tuition", "book", "learning"},
		KeywordsHi: []string{"शिक्षा", "कोर्स", "स्कूल", "कॉलेज", "ट्यूशन", "किताब", "पढ़ाई"},
	},
	{
		Category: model.CategoryHousing,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)rent|किराया|landlord|housing|society|maintenance|flat\s*rent`),
			regexp.MustCompile(`(?i)home\s*loan|emi|housing\s*loan`),
			regexp.MustCompile(`(?i)property\s*tax|stamp\s*duty`),
		},
		Keywords:   []string{"rent", "housing", "maintenance", "society", "home loan"},
		KeywordsHi: []string{"किराया", "मकान", "घर", "मेंटेनेंस", "सोसाइटी"},
	},
	{
		Category: model.CategoryInsurance,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)insurance|lic|hdfc\s*life|icici\s*prudential|max\s*life|sbi\s*life`),
			regexp.MustCompile(`(?i)policy|premium|star\s*health|care\s*health|digit`),
		},
		MCCCodes:   []string{"6300"},
		Keywords:   []string{"insurance", "policy", "premium", "life", "health", "car", "bike"},
		KeywordsHi: []string{"बीमा", "पॉलिसी", "प्रीमियम", "जीवन बीमा", "स्वास्थ्य बीमा"},
	},
	{
		Category: model.CategoryInvestment,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)mutual\s*fund|sip|groww|zerodha|upstox|paytm\s*money|kuvera|coin`),
			regexp.MustCompile(`(?i)shares|stocks|nse|bse|demat|trading|investment`),
			regexp.MustCompile(`(?i)fd|fixed\s*deposit|rd|recurring|ppf|nps|epf`),
		},
		Keywords:   []string{"mutual fund", "sip", "investment", "stocks", "shares", "fd", "ppf"},
		KeywordsHi: []string{"निवेश", "म्यूचुअल फंड", "शेयर", "एफडी", "पीपीएफ"},
	},
	{
		Category: model.CategoryEMILoan,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)emi|loan|repayment|installment|bajaj\s*finserv|hdfc\s*loan|icici\s*loan`),
			regexp.MustCompile(`(?i)credit\s*card\s*bill|card\s*payment`),
		},
		Keywords:   []string{"emi", "loan", "repayment", "installment", "credit card"},
		KeywordsHi: []string{"ईएमआई", "लोन", "किस्त", "भुगतान"},
	},
	{
		Category: model.CategorySubscription,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)subscription|membership|annual|monthly\s*fee`),
			regexp.MustCompile(`(?i)prime|plus|premium|pro\s*membership`),
		},
		Keywords:   []string{"subscription", "membership", "annual", "monthly"},
		KeywordsHi: []string{"सदस्यता", "मेंबरशिप", "सब्सक्रिप्शन"},
	},
	{
		Category: model.CategoryTravel,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)makemytrip|goibibo|cleartrip|yatra|ixigo|expedia|booking\.com`),
			regexp.MustCompile(`(?i)hotel|resort|oyo|treebo|fabhotels|airbnb`),
			regexp.MustCompile(`(?i)flight|airline|indigo|spicejet|air\s*india|vistara`),
		},
		MCCCodes:   []string{"4511", "7011", "3000"},
		Keywords:   []string{"travel", "flight", "hotel", "booking", "trip", "vacation"},
		KeywordsHi: []string{"यात्रा", "उड़ान", "होटल", "बुकिंग", "ट्रिप", "छुट्टी"},
	},
	{
		Category: model.CategoryPersonalCare,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)salon|parlour|spa|beauty|haircut|grooming`),
			regexp.MustCompile(`(?i)urban\s*company|urban\s*clap`),
		},
		Keywords:   []string{"salon", "spa", "beauty", "haircut", "grooming"},
		KeywordsHi: []string{"सैलून", "स्पा", "ब्यूटी", "हेयर", "ग्रूमिंग"},
	},
	{
		Category: model.CategoryGiftsCharity,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)gift|donation|charity|ngo|temple|mandir|church|mosque|gurudwara`),
			regexp.MustCompile(`(?i)daan|दान|भेंट`),
		},
		Keywords:   []string{"gift", "donation", "charity", "temple"},
		KeywordsHi: []string{"उपहार", "दान", "चैरिटी", "मंदिर"},
	},
	{
		Category: model.CategoryTransfer,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)transfer|upi|imps|neft|rtgs|p2p|send\s*money`),
			regexp.MustCompile(`(?i)to\s+[a-z]+@|paid\s+to`),
		},
		Keywords:   []string{"transfer", "send", "paid to", "upi"},
		KeywordsHi: []string{"ट्रांसफर", "भेजा", "भुगतान"},
	},
	{
		Category: model.CategoryIncome,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)salary|credited|income|refund|cashback|interest\s*credit`),
			regexp.MustCompile(`(?i)dividend|bonus|reimbursement`),
		},
		Keywords:   []string{"salary", "income", "credit", "refund", "cashback"},
		KeywordsHi: []string{"वेतन", "आय", "क्रेडिट", "रिफंड", "कैशबैक"},
	},
	{
		Category: model.CategoryATMWithdrawal,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)atm|cash\s*withdrawal|withdraw`),
		},
		Keywords:   []string{"atm", "withdrawal", "cash"},
		KeywordsHi: []string{"एटीएम", "निकासी", "नकद"},
	},
}
