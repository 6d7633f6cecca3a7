// Package rules holds the static category rule table driving classification.
//
// The table is data, not logic: an ordered list of category definitions with
// regex patterns, MCC codes and bilingual keyword lists. Order is a
// correctness contract — when several rules could match the same text, the
// first rule in the table wins.
package rules

import (
	"regexp"

	"github.com/rupeeroute/rupee-route/internal/model"
)

// Rule is one entry of the category rule table. Rules are loaded once at
// startup and never mutated.
type Rule struct {
	Category    model.Category
	SubCategory string
	Patterns    []*regexp.Regexp
	MCCCodes    []string
	Keywords    []string
	KeywordsHi  []string
}

// Table returns the ordered rule table. The returned slice is shared;
// callers must not modify it.
func Table() []Rule {
	return categoryRules
}

// MatchMCC scans the table in order and returns the first rule claiming the
// given merchant category code.
func MatchMCC(code string) (*Rule, bool) {
	if code == "" {
		return nil, false
	}
	for i := range categoryRules {
		for _, mcc := range categoryRules[i].MCCCodes {
			if mcc == code {
				return &categoryRules[i], true
			}
		}
	}
	return nil, false
}
