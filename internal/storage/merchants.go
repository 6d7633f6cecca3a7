package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/rupeeroute/rupee-route/internal/model"
)

// SaveMerchants upserts resolved merchant categories. Keys are expected to
// be case-folded merchant names, matching the classifier cache.
func (s *SQLiteStore) SaveMerchants(ctx context.Context, merchants map[string]model.Category) error {
	if len(merchants) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO merchants (name, category, last_updated)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			category = excluded.category,
			last_updated = excluded.last_updated
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare merchant upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now()
	for name, category := range merchants {
		if name == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, name, string(category), now); err != nil {
			return fmt.Errorf("failed to save merchant %q: %w", name, err)
		}
	}

	return tx.Commit()
}

// LoadMerchants returns all persisted merchant resolutions, suitable for
// pre-warming a classifier's cache.
func (s *SQLiteStore) LoadMerchants(ctx context.Context) (map[string]model.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, category FROM merchants`)
	if err != nil {
		return nil, fmt.Errorf("failed to query merchants: %w", err)
	}
	defer func() { _ = rows.Close() }()

	merchants := make(map[string]model.Category)
	for rows.Next() {
		var name, category string
		if err := rows.Scan(&name, &category); err != nil {
			return nil, fmt.Errorf("failed to scan merchant: %w", err)
		}
		merchants[name] = model.Category(category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate merchants: %w", err)
	}

	return merchants, nil
}
