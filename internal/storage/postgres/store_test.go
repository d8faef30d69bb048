package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/layarlegenda59/kasirku/internal/domain"
	"github.com/layarlegenda59/kasirku/internal/storage"
)

// Integration tests; they need a reachable database and are skipped
// otherwise.
func mustOpen(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping postgres integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.db.Exec(context.Background(), `TRUNCATE products, transactions, settings;`)
	require.NoError(t, err)
	return s
}

func TestProducts_UpsertListDelete(t *testing.T) {
	s := mustOpen(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertProduct(ctx, domain.Product{ID: "2", Name: "Croissant", Price: 22000, Stock: 30}))
	require.NoError(t, s.UpsertProduct(ctx, domain.Product{ID: "1", Name: "Kopi Susu", Price: 18000, Stock: 50}))

	out, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "1", out[0].ID)

	// Same id fully replaces the row.
	require.NoError(t, s.UpsertProduct(ctx, domain.Product{ID: "1", Name: "Kopi Hitam", Price: 15000, Stock: 50}))
	out, err = s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "Kopi Hitam", out[0].Name)

	require.NoError(t, s.DeleteProduct(ctx, "missing"))
	require.NoError(t, s.DeleteProduct(ctx, "2"))
	out, err = s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestDecrementStock(t *testing.T) {
	s := mustOpen(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertProduct(ctx, domain.Product{ID: "X", Name: "Teh", Price: 15000, Stock: 10}))
	require.NoError(t, s.DecrementStock(ctx, "X", 3))
	require.NoError(t, s.DecrementStock(ctx, "X", 20))

	out, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(-13), out[0].Stock)
}

func TestTransactions_OrderAndDuplicate(t *testing.T) {
	s := mustOpen(t)
	ctx := context.Background()

	older := domain.Transaction{
		ID:            "TRX-1",
		Date:          time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		Items:         []domain.TransactionItem{{ProductID: "1", Quantity: 2, Price: 18000}},
		Total:         36000,
		PaymentMethod: domain.PaymentCash,
		CashierName:   "Andi",
	}
	newer := older
	newer.ID = "TRX-2"
	newer.Date = older.Date.Add(24 * time.Hour)

	require.NoError(t, s.InsertTransaction(ctx, older))
	require.NoError(t, s.InsertTransaction(ctx, newer))

	out, err := s.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "TRX-2", out[0].ID)
	require.Equal(t, older.Items, out[1].Items)

	require.ErrorIs(t, s.InsertTransaction(ctx, older), storage.ErrDuplicateID)
}

func TestSettings(t *testing.T) {
	s := mustOpen(t)
	ctx := context.Background()

	out, err := s.GetSettings(ctx)
	require.NoError(t, err)
	require.Nil(t, out)

	want := domain.StoreSettings{Name: "Kopi Senja", Phone: "0812"}
	require.NoError(t, s.UpsertSettings(ctx, want))
	require.NoError(t, s.UpsertSettings(ctx, want)) // idempotent single row

	out, err = s.GetSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, &want, out)
}
