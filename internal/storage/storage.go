// Package storage defines the contract all persistence backends
// implement. The three implementations (sqlite, postgres, redis) must
// be behaviorally indistinguishable to callers apart from latency and
// durability.
package storage

import (
	"context"
	"errors"

	"github.com/layarlegenda59/kasirku/internal/domain"
)

var (
	// ErrDuplicateID is returned by InsertTransaction when the id
	// already exists. Inserts never overwrite.
	ErrDuplicateID = errors.New("duplicate transaction id")
)

// Store is the uniform record-access contract over products,
// transactions and settings. Each implementation owns its own
// connection, opened once and kept for the process lifetime.
type Store interface {
	// ListProducts returns all products ordered by id ascending.
	// An empty catalog yields an empty slice, not an error.
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// UpsertProduct inserts the product or fully replaces the row
	// with the same id. No partial-field update.
	UpsertProduct(ctx context.Context, p domain.Product) error
	// DeleteProduct removes the product. Deleting an unknown id is
	// a no-op success.
	DeleteProduct(ctx context.Context, id string) error
	// DecrementStock subtracts qty from the product's stock. The
	// result may be negative; no availability check is made.
	DecrementStock(ctx context.Context, productID string, qty int64) error

	// ListTransactions returns all transactions ordered by date
	// descending (newest first).
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	// InsertTransaction appends a transaction record. Fails with
	// ErrDuplicateID when the id was already inserted.
	InsertTransaction(ctx context.Context, t domain.Transaction) error

	// GetSettings returns the settings row, or (nil, nil) when it
	// was never written.
	GetSettings(ctx context.Context) (*domain.StoreSettings, error)
	// UpsertSettings writes the single settings row.
	UpsertSettings(ctx context.Context, s domain.StoreSettings) error

	Close() error
}
