package rules

import (
	"testing"

	"github.com/rupeeroute/rupee-route/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Order(t *testing.T) {
	table := Table()
	require.Len(t, table, 20)

	// Table order is the tie-break contract. The first and last rules
	// anchor it; a reshuffle would silently change classification.
	assert.Equal(t, model.CategoryFoodDining, table[0].Category)
	assert.Equal(t, model.CategoryGroceries, table[1].Category)
	assert.Equal(t, model.CategoryTransfer, table[17].Category)
	assert.Equal(t, model.CategoryIncome, table[18].Category)
	assert.Equal(t, model.CategoryATMWithdrawal, table[19].Category)
}

func TestTable_Integrity(t *testing.T) {
	for _, rule := range Table() {
		assert.True(t, rule.Category.Valid(), "rule for %s has invalid category", rule.Category)
		assert.NotEmpty(t, rule.Patterns, "rule for %s has no patterns", rule.Category)
		assert.NotEmpty(t, rule.Keywords, "rule for %s has no keywords", rule.Category)
		assert.NotEmpty(t, rule.KeywordsHi, "rule for %s has no Hindi keywords", rule.Category)

		for _, mcc := range rule.MCCCodes {
			assert.Len(t, mcc, 4, "rule for %s has malformed MCC %q", rule.Category, mcc)
		}
	}
}

func TestMatchMCC(t *testing.T) {
	tests := []struct {
		name         string
		mcc          string
		wantCategory model.Category
		wantMatch    bool
	}{
		{name: "restaurants", mcc: "5812", wantCategory: model.CategoryFoodDining, wantMatch: true},
		{name: "fast food", mcc: "5814", wantCategory: model.CategoryFoodDining, wantMatch: true},
		{name: "grocery stores", mcc: "5411", wantCategory: model.CategoryGroceries, wantMatch: true},
		{name: "taxis", mcc: "4121", wantCategory: model.CategoryTransport, wantMatch: true},
		{name: "pharmacies", mcc: "5912", wantCategory: model.CategoryHealth, wantMatch: true},
		{name: "insurance", mcc: "6300", wantCategory: model.CategoryInsurance, wantMatch: true},
		{name: "airlines", mcc: "4511", wantCategory: model.CategoryTravel, wantMatch: true},
		{name: "unknown code", mcc: "9999", wantMatch: false},
		{name: "empty code", mcc: "", wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := MatchMCC(tt.mcc)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				require.NotNil(t, rule)
				assert.Equal(t, tt.wantCategory, rule.Category)
			}
		})
	}
}

func TestTable_PatternSamples(t *testing.T) {
	tests := []struct {
		text         string
		wantCategory model.Category
	}{
		{text: "swiggy order", wantCategory: model.CategoryFoodDining},
		{text: "blinkit groceries", wantCategory: model.CategoryGroceries},
		{text: "flipkart purchase", wantCategory: model.CategoryShopping},
		{text: "netflix renewal", wantCategory: model.CategoryEntertainment},
		{text: "tata power bijli", wantCategory: model.CategoryUtilities},
		{text: "irctc ticket", wantCategory: model.CategoryTransport},
		{text: "apollo pharmacy", wantCategory: model.CategoryHealth},
		{text: "unacademy class", wantCategory: model.CategoryEducation},
		{text: "makemytrip", wantCategory: model.CategoryTravel},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var matched model.Category
		scan:
			for _, rule := range Table() {
				for _, pattern := range rule.Patterns {
					if pattern.MatchString(tt.text) {
						matched = rule.Category
						break scan
					}
				}
			}
			assert.Equal(t, tt.wantCategory, matched)
		})
	}
}
