package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/rupeeroute/rupee-route/internal/model"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func categorizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categorize <transactions.json>",
		Short: "Categorize a batch of transactions",
		Long: `Categorize raw transactions from a JSON file.

Each transaction is resolved against the rule table (merchant cache, MCC,
regex patterns, keywords, heuristics, optional AI fallback). Results are
stored in the local database; resolved merchants are remembered so later
runs classify them instantly.`,
		Args: cobra.ExactArgs(1),
		RunE: runCategorize,
	}

	cmd.Flags().Bool("dry-run", false, "Print results without saving")
	cmd.Flags().BoolP("json", "j", false, "Emit results as JSON to stdout")

	_ = viper.BindPFlag("categorize.dry_run", cmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("categorize.json", cmd.Flags().Lookup("json"))

	return cmd
}

func runCategorize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	txns, err := loadTransactions(args[0])
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		slog.Info("No transactions to categorize")
		return nil
	}

	classifier, err := buildClassifier()
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	// Warm the merchant cache with merchants resolved in earlier runs.
	merchants, err := store.LoadMerchants(ctx)
	if err != nil {
		return err
	}
	classifier.WarmCache(merchants)

	bar := progressbar.NewOptions(len(txns),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Categorizing transactions...[reset]"),
	)

	// Batches keep input order, so chunking only serves the progress bar.
	const chunkSize = 25
	results := make([]model.CategorizedTransaction, 0, len(txns))
	for start := 0; start < len(txns); start += chunkSize {
		end := start + chunkSize
		if end > len(txns) {
			end = len(txns)
		}
		results = append(results, classifier.CategorizeBatch(ctx, txns[start:end])...)
		_ = bar.Add(end - start)
	}
	fmt.Fprintln(os.Stderr)

	if viper.GetBool("categorize.json") {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
	} else {
		for _, result := range results {
			cmd.Printf("%-40.40s  %-16s %.2f\n", result.Description, result.Category, result.Confidence)
		}
	}

	if viper.GetBool("categorize.dry_run") {
		slog.Info("Dry run, skipping save", "count", len(results))
		return nil
	}

	if err := store.SaveTransactions(ctx, results); err != nil {
		return err
	}
	if err := store.SaveMerchants(ctx, classifier.CachedMerchants()); err != nil {
		return err
	}

	slog.Info("Categorized transactions", "count", len(results))
	return nil
}
