// Package classify implements the transaction categorization engine.
//
// Resolution is strictly ordered, first match wins: merchant cache, MCC
// lookup, regex patterns, keyword containment, special-case heuristics,
// optional AI fallback, then the OTHER default. Categorize is total over
// well-formed input: it never returns an error for data-driven reasons.
package classify

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/rupeeroute/rupee-route/internal/ai"
	"github.com/rupeeroute/rupee-route/internal/model"
	"github.com/rupeeroute/rupee-route/internal/rules"
)

// Confidence assigned by each resolution step.
const (
	confidenceCached  = 0.95
	confidenceMCC     = 0.90
	confidencePattern = 0.85
	confidenceKeyword = 0.75
	confidenceSalary  = 0.90
	confidenceMandate = 0.70
	confidenceDefault = 0.30
)

// aiAmountThreshold is the minimum amount (currency units) for which the AI
// fallback is consulted. Small unmatched transactions go straight to OTHER.
const aiAmountThreshold = 1000.0

// batchWorkers bounds concurrent categorization in CategorizeBatch. Only the
// AI fallback is slow, so a small pool keeps the capability from being
// overwhelmed.
const batchWorkers = 5

// Config holds options for the Classifier.
type Config struct {
	AIClient ai.Client    // optional; enables the AI fallback step
	Logger   *slog.Logger // defaults to slog.Default()
	AIModel  string       // model name passed to the AI capability
}

// Classifier categorizes transactions against the static rule table.
// Each instance owns its merchant cache; discard the instance to reset it.
type Classifier struct {
	aiClient ai.Client
	logger   *slog.Logger
	cache    *merchantCache
	rules    []rules.Rule
	aiModel  string
}

// New creates a Classifier. The AI capability is optional.
func New(cfg Config) *Classifier {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	aiModel := cfg.AIModel
	if aiModel == "" {
		aiModel = "claude-3-haiku"
	}

	return &Classifier{
		rules:    rules.Table(),
		cache:    newMerchantCache(),
		aiClient: cfg.AIClient,
		logger:   logger,
		aiModel:  aiModel,
	}
}

// Categorize resolves a single transaction to a category. It never fails:
// when nothing matches, the result is CategoryOther at low confidence.
// Successful pattern and keyword matches record the merchant in the cache.
func (c *Classifier) Categorize(ctx context.Context, txn model.Transaction) model.CategorizedTransaction {
	description := strings.ToLower(txn.Description)
	merchantName := strings.ToLower(txn.MerchantName)

	// Merchant cache wins over everything, including MCC.
	if merchantName != "" {
		if category, ok := c.cache.get(merchantName); ok {
			return c.buildResult(txn, category, confidenceCached, []string{"cached"}, "")
		}
	}

	if txn.MCC != "" {
		if rule, ok := rules.MatchMCC(txn.MCC); ok {
			return c.buildResult(txn, rule.Category, confidenceMCC, []string{"mcc"}, "")
		}
	}

	for i := range c.rules {
		rule := &c.rules[i]
		for _, pattern := range rule.Patterns {
			if pattern.MatchString(description) || (merchantName != "" && pattern.MatchString(merchantName)) {
				c.rememberMerchant(merchantName, rule.Category)
				tags := []string{}
				if rule.SubCategory != "" {
					tags = append(tags, strings.ToLower(rule.SubCategory))
				}
				return c.buildResult(txn, rule.Category, confidencePattern, tags, rule.SubCategory)
			}
		}
	}

	for i := range c.rules {
		rule := &c.rules[i]
		if c.matchesKeyword(rule, description, merchantName) {
			c.rememberMerchant(merchantName, rule.Category)
			return c.buildResult(txn, rule.Category, confidenceKeyword, []string{}, "")
		}
	}

	if txn.Type == model.TypeCredit &&
		(strings.Contains(description, "salary") || strings.Contains(description, "credited")) {
		return c.buildResult(txn, model.CategoryIncome, confidenceSalary, []string{"salary"}, "")
	}

	if txn.Mode == model.ModeMandate {
		return c.buildResult(txn, model.CategoryEMILoan, confidenceMandate, []string{"mandate"}, "")
	}

	if c.aiClient != nil && txn.Amount > aiAmountThreshold {
		if category, confidence, ok := c.categorizeWithAI(ctx, txn); ok {
			return c.buildResult(txn, category, confidence, []string{"ai"}, "")
		}
	}

	return c.buildResult(txn, model.CategoryOther, confidenceDefault, []string{}, "")
}

// CategorizeBatch categorizes transactions concurrently, preserving input
// order in the output. The merchant cache is the only shared state; its
// writes are serialized, and concurrent writes for the same merchant race
// on a deterministic value, so lost updates are harmless.
func (c *Classifier) CategorizeBatch(ctx context.Context, txns []model.Transaction) []model.CategorizedTransaction {
	results := make([]model.CategorizedTransaction, len(txns))

	sem := make(chan struct{}, batchWorkers)
	var wg sync.WaitGroup

	for i, txn := range txns {
		wg.Add(1)
		go func(idx int, transaction model.Transaction) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = c.buildResult(transaction, model.CategoryOther, confidenceDefault, []string{}, "")
				return
			}

			results[idx] = c.Categorize(ctx, transaction)
		}(i, txn)
	}

	wg.Wait()

	return results
}

// WarmCache seeds the merchant cache with previously resolved merchants.
// Keys are case-folded before insertion.
func (c *Classifier) WarmCache(entries map[string]model.Category) {
	for name, category := range entries {
		if name == "" {
			continue
		}
		c.cache.set(strings.ToLower(name), category)
	}
}

// CachedMerchants returns a copy of the merchant cache, keyed by case-folded
// merchant name. Used by callers that persist resolutions across sessions.
func (c *Classifier) CachedMerchants() map[string]model.Category {
	return c.cache.snapshot()
}

func (c *Classifier) matchesKeyword(rule *rules.Rule, description, merchantName string) bool {
	for _, keyword := range rule.Keywords {
		kw := strings.ToLower(keyword)
		if strings.Contains(description, kw) || (merchantName != "" && strings.Contains(merchantName, kw)) {
			return true
		}
	}
	for _, keyword := range rule.KeywordsHi {
		kw := strings.ToLower(keyword)
		if strings.Contains(description, kw) || (merchantName != "" && strings.Contains(merchantName, kw)) {
			return true
		}
	}
	return false
}

func (c *Classifier) rememberMerchant(merchantName string, category model.Category) {
	if merchantName == "" {
		return
	}
	c.cache.set(merchantName, category)
}

func (c *Classifier) buildResult(txn model.Transaction, category model.Category, confidence float64, tags []string, subCategory string) model.CategorizedTransaction {
	result := model.CategorizedTransaction{
		Transaction: txn,
		Category:    category,
		SubCategory: subCategory,
		Confidence:  confidence,
		Tags:        tags,
	}

	// "subscription" is reserved for future rules; today only MANDATE
	// transactions are recurring.
	result.IsRecurring = txn.Mode == model.ModeMandate || result.HasTag("subscription")

	return result
}
