package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rupeeroute/rupee-route/internal/ai"
	"github.com/rupeeroute/rupee-route/internal/classify"
	"github.com/rupeeroute/rupee-route/internal/model"
	"github.com/rupeeroute/rupee-route/internal/storage"
	"github.com/spf13/viper"
)

// loadTransactions reads a JSON array of raw transactions from path.
func loadTransactions(path string) ([]model.Transaction, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied input file
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var txns []model.Transaction
	if err := json.Unmarshal(data, &txns); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return txns, nil
}

// openStore opens the configured SQLite database.
func openStore() (*storage.SQLiteStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "rupee", "rupee.db")
	}

	return storage.NewSQLiteStore(dbPath)
}

// buildClassifier constructs a classifier, wiring in the Anthropic fallback
// when an API key is configured.
func buildClassifier() (*classify.Classifier, error) {
	cfg := classify.Config{
		AIModel: viper.GetString("ai.model"),
	}

	if apiKey := viper.GetString("ai.api_key"); apiKey != "" {
		client, err := ai.NewAnthropicClient(ai.AnthropicConfig{
			APIKey:    apiKey,
			Model:     viper.GetString("ai.model"),
			RateLimit: viper.GetInt("ai.rate_limit"),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create AI client: %w", err)
		}
		cfg.AIClient = client
	}

	return classify.New(cfg), nil
}
