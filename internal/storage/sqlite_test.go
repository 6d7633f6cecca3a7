package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rupeeroute/rupee-route/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "rupee.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func sampleTransaction(id string, date time.Time) model.CategorizedTransaction {
	return model.CategorizedTransaction{
		Transaction: model.Transaction{
			ID:           id,
			Date:         date,
			Description:  "SWIGGY ORDER",
			Amount:       450,
			Type:         model.TypeDebit,
			Mode:         model.ModeUPI,
			MerchantName: "Swiggy",
		},
		Category:    model.CategoryFoodDining,
		SubCategory: "Restaurant",
		Confidence:  0.85,
		Tags:        []string{"restaurant"},
	}
}

func TestNewSQLiteStore_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	assert.Error(t, err)
}

func TestNewSQLiteStore_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "rupee.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestSaveAndListTransactions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	txns := []model.CategorizedTransaction{
		sampleTransaction("txn-2", base.AddDate(0, 0, 10)),
		sampleTransaction("txn-1", base),
	}
	require.NoError(t, store.SaveTransactions(ctx, txns))

	got, err := store.ListTransactions(ctx, base, base.AddDate(0, 0, 30))
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Ordered by date, not insertion.
	assert.Equal(t, "txn-1", got[0].ID)
	assert.Equal(t, "txn-2", got[1].ID)

	first := got[0]
	assert.Equal(t, "SWIGGY ORDER", first.Description)
	assert.Equal(t, 450.0, first.Amount)
	assert.Equal(t, model.TypeDebit, first.Type)
	assert.Equal(t, model.ModeUPI, first.Mode)
	assert.Equal(t, "Swiggy", first.MerchantName)
	assert.Equal(t, model.CategoryFoodDining, first.Category)
	assert.Equal(t, "Restaurant", first.SubCategory)
	assert.Equal(t, 0.85, first.Confidence)
	assert.Equal(t, []string{"restaurant"}, first.Tags)
}

func TestSaveTransactions_UpsertRecategorizes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	date := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	original := sampleTransaction("txn-1", date)
	require.NoError(t, store.SaveTransactions(ctx, []model.CategorizedTransaction{original}))

	updated := original
	updated.Category = model.CategoryGroceries
	updated.SubCategory = ""
	updated.Confidence = 0.95
	updated.Tags = []string{"cached"}
	require.NoError(t, store.SaveTransactions(ctx, []model.CategorizedTransaction{updated}))

	got, err := store.ListTransactions(ctx, date.AddDate(0, 0, -1), date.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, model.CategoryGroceries, got[0].Category)
	assert.Equal(t, 0.95, got[0].Confidence)
	assert.Equal(t, []string{"cached"}, got[0].Tags)
}

func TestListTransactions_WindowExcludesOutside(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	txns := []model.CategorizedTransaction{
		sampleTransaction("inside", base.AddDate(0, 0, 5)),
		sampleTransaction("outside", base.AddDate(0, 1, 0)),
	}
	require.NoError(t, store.SaveTransactions(ctx, txns))

	got, err := store.ListTransactions(ctx, base, base.AddDate(0, 0, 15))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "inside", got[0].ID)
}

func TestSaveTransactions_NilTags(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	date := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	txn := sampleTransaction("txn-1", date)
	txn.Tags = nil
	require.NoError(t, store.SaveTransactions(ctx, []model.CategorizedTransaction{txn}))

	got, err := store.ListTransactions(ctx, date.AddDate(0, 0, -1), date.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.NotNil(t, got[0].Tags)
	assert.Empty(t, got[0].Tags)
}

func TestSaveAndLoadMerchants(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMerchants(ctx, map[string]model.Category{
		"swiggy": model.CategoryFoodDining,
		"uber":   model.CategoryTransport,
	}))

	got, err := store.LoadMerchants(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]model.Category{
		"swiggy": model.CategoryFoodDining,
		"uber":   model.CategoryTransport,
	}, got)
}

func TestSaveMerchants_UpsertWins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMerchants(ctx, map[string]model.Category{
		"swiggy": model.CategoryOther,
	}))
	require.NoError(t, store.SaveMerchants(ctx, map[string]model.Category{
		"swiggy": model.CategoryFoodDining,
	}))

	got, err := store.LoadMerchants(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryFoodDining, got["swiggy"])
}

func TestSaveMerchants_EmptyMapNoop(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveMerchants(context.Background(), nil))
}
