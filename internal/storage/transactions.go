package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rupeeroute/rupee-route/internal/model"
)

// SaveTransactions upserts a batch of categorized transactions atomically.
func (s *SQLiteStore) SaveTransactions(ctx context.Context, txns []model.CategorizedTransaction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions
			(id, date, description, amount, type, mode, merchant_name, mcc,
			 category, sub_category, confidence, tags, is_recurring)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			category = excluded.category,
			sub_category = excluded.sub_category,
			confidence = excluded.confidence,
			tags = excluded.tags,
			is_recurring = excluded.is_recurring
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range txns {
		txn := &txns[i]

		tags := txn.Tags
		if tags == nil {
			tags = []string{}
		}
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return fmt.Errorf("failed to marshal tags for %s: %w", txn.ID, err)
		}

		if _, err := stmt.ExecContext(ctx,
			txn.ID, txn.Date, txn.Description, txn.Amount, string(txn.Type),
			string(txn.Mode), txn.MerchantName, txn.MCC, string(txn.Category),
			txn.SubCategory, txn.Confidence, string(tagsJSON), txn.IsRecurring,
		); err != nil {
			return fmt.Errorf("failed to save transaction %s: %w", txn.ID, err)
		}
	}

	return tx.Commit()
}

// ListTransactions returns categorized transactions with dates in
// [from, to], ordered by date.
func (s *SQLiteStore) ListTransactions(ctx context.Context, from, to time.Time) ([]model.CategorizedTransaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, description, amount, type, mode, merchant_name, mcc,
		       category, sub_category, confidence, tags, is_recurring
		FROM transactions
		WHERE date >= ? AND date <= ?
		ORDER BY date
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.CategorizedTransaction
	for rows.Next() {
		var txn model.CategorizedTransaction
		var txnType, mode, category, tagsJSON string

		if err := rows.Scan(
			&txn.ID, &txn.Date, &txn.Description, &txn.Amount, &txnType,
			&mode, &txn.MerchantName, &txn.MCC, &category,
			&txn.SubCategory, &txn.Confidence, &tagsJSON, &txn.IsRecurring,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		txn.Type = model.TransactionType(txnType)
		txn.Mode = model.PaymentMode(mode)
		txn.Category = model.Category(category)

		if err := json.Unmarshal([]byte(tagsJSON), &txn.Tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags for %s: %w", txn.ID, err)
		}
		if txn.Tags == nil {
			txn.Tags = []string{}
		}

		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txns, nil
}
