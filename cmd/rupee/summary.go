package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rupeeroute/rupee-route/internal/model"
	"github.com/rupeeroute/rupee-route/internal/report"
	"github.com/rupeeroute/rupee-route/internal/summary"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Generate a spending summary for a period",
		Long: `Generate a spending summary over previously categorized transactions.

The report covers totals, per-category breakdown with trends against the
preceding period of equal length, top merchants, anomalies and insights.`,
		RunE: runSummary,
	}

	cmd.Flags().StringP("from", "f", "", "Period start date (format: 2006-01-02)")
	cmd.Flags().StringP("to", "t", "", "Period end date (format: 2006-01-02)")
	cmd.Flags().IntP("days", "d", 30, "Period length in days (used if from/to not specified)")
	cmd.Flags().Bool("no-compare", false, "Skip the previous-period trend comparison")
	cmd.Flags().BoolP("json", "j", false, "Emit the summary as JSON to stdout")

	_ = viper.BindPFlag("summary.no_compare", cmd.Flags().Lookup("no-compare"))
	_ = viper.BindPFlag("summary.json", cmd.Flags().Lookup("json"))

	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	from, to, err := resolvePeriod(cmd)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	current, err := store.ListTransactions(ctx, from, to)
	if err != nil {
		return err
	}

	var previous []model.CategorizedTransaction
	if !viper.GetBool("summary.no_compare") {
		length := to.Sub(from)
		previous, err = store.ListTransactions(ctx, from.Add(-length), from)
		if err != nil {
			return err
		}
	}

	result := summary.Generate(current, previous)

	if viper.GetBool("summary.json") {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	cmd.Println(report.NewFormatter().Format(&result))
	return nil
}

func resolvePeriod(cmd *cobra.Command) (time.Time, time.Time, error) {
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")
	days, _ := cmd.Flags().GetInt("days")

	now := time.Now()
	to := now
	if toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date: %w", err)
		}
		to = parsed
	}

	from := to.AddDate(0, 0, -days)
	if fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date: %w", err)
		}
		from = parsed
	}

	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("period start %s is after end %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	return from, to, nil
}
