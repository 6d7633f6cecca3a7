package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rupeeroute/rupee-route/internal/ai"
	"github.com/rupeeroute/rupee-route/internal/model"
)

// aiMaxTokens bounds the fallback completion; the expected reply is a single
// small JSON object.
const aiMaxTokens = 50

// categorizeWithAI asks the injected capability to categorize an unmatched
// transaction. Every failure mode — transport error, malformed JSON, a
// category outside the closed enum — collapses to ok=false so the caller
// falls through to the default. Never propagates an error.
func (c *Classifier) categorizeWithAI(ctx context.Context, txn model.Transaction) (model.Category, float64, bool) {
	resp, err := c.aiClient.Complete(ctx, ai.CompletionRequest{
		Model:     c.aiModel,
		MaxTokens: aiMaxTokens,
		Messages: []ai.Message{
			{Role: ai.RoleSystem, Content: aiSystemPrompt()},
			{Role: ai.RoleUser, Content: aiUserPrompt(txn)},
		},
	})
	if err != nil {
		c.logger.Warn("AI categorization failed",
			"transaction_id", txn.ID,
			"error", err)
		return "", 0, false
	}

	category, confidence, err := parseAIReply(resp.Content)
	if err != nil {
		c.logger.Warn("AI categorization returned unusable reply",
			"transaction_id", txn.ID,
			"error", err)
		return "", 0, false
	}

	c.logger.Debug("AI categorization succeeded",
		"transaction_id", txn.ID,
		"category", category,
		"confidence", confidence)

	return category, confidence, true
}

func aiSystemPrompt() string {
	names := make([]string, len(model.AllCategories))
	for i, category := range model.AllCategories {
		names[i] = string(category)
	}

	return fmt.Sprintf(`You are a transaction categorizer. Categorize the transaction into ONE of: %s.
Respond only with JSON: {"category": "CATEGORY_NAME", "confidence": 0.8}`, strings.Join(names, ", "))
}

func aiUserPrompt(txn model.Transaction) string {
	mode := string(txn.Mode)
	if mode == "" {
		mode = "Unknown"
	}
	return fmt.Sprintf(`Transaction: %q, Amount: ₹%v, Mode: %s`, txn.Description, txn.Amount, mode)
}

// parseAIReply extracts and validates the {"category","confidence"} object
// from the reply text. Models sometimes wrap JSON in markdown fences or
// surrounding prose, so parsing starts at the outermost brace pair.
func parseAIReply(content string) (model.Category, float64, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return "", 0, fmt.Errorf("no JSON object in reply")
	}

	var reply struct {
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &reply); err != nil {
		return "", 0, fmt.Errorf("failed to parse reply JSON: %w", err)
	}

	category := model.Category(strings.ToUpper(strings.TrimSpace(reply.Category)))
	if !category.Valid() {
		return "", 0, fmt.Errorf("category %q is not in the closed set", reply.Category)
	}

	confidence := reply.Confidence
	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}

	return category, confidence, nil
}
