// Package postgres implements the storage contract on a managed
// PostgreSQL database via pgx.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/layarlegenda59/kasirku/internal/domain"
	"github.com/layarlegenda59/kasirku/internal/storage"
)

const settingsRowID = 1

// SQLSTATE for unique_violation.
const pgErrUniqueViolation = "23505"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		sku TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		price BIGINT NOT NULL DEFAULT 0,
		stock BIGINT NOT NULL DEFAULT 0,
		image_url TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		date TIMESTAMPTZ NOT NULL,
		items TEXT NOT NULL,
		total BIGINT NOT NULL,
		payment_method TEXT NOT NULL DEFAULT '',
		cashier_name TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		logo_url TEXT NOT NULL DEFAULT '',
		receipt_footer TEXT NOT NULL DEFAULT ''
	)`,
}

// Store is the managed relational backend. The pool is opened once at
// process start and held for the process lifetime.
type Store struct {
	db *pgxpool.Pool
}

// Open connects to the database and ensures the schema exists.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	for _, q := range schema {
		if _, err := pool.Exec(ctx, q); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
	}
	return &Store{db: pool}, nil
}

// NewWithPool wraps an existing pool (used in tests).
func NewWithPool(pool *pgxpool.Pool) *Store {
	return &Store{db: pool}
}

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, sku, name, category, price, stock, image_url
FROM products
ORDER BY id ASC;
`
	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Product, 0, 16)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Category, &p.Price, &p.Stock, &p.ImageURL); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) UpsertProduct(ctx context.Context, p domain.Product) error {
	const q = `
INSERT INTO products (id, sku, name, category, price, stock, image_url)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
	sku = EXCLUDED.sku,
	name = EXCLUDED.name,
	category = EXCLUDED.category,
	price = EXCLUDED.price,
	stock = EXCLUDED.stock,
	image_url = EXCLUDED.image_url;
`
	if _, err := s.db.Exec(ctx, q, p.ID, p.SKU, p.Name, p.Category, p.Price, p.Stock, p.ImageURL); err != nil {
		return fmt.Errorf("upsert product %s: %w", p.ID, err)
	}
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	const q = `DELETE FROM products WHERE id = $1;`
	if _, err := s.db.Exec(ctx, q, id); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

func (s *Store) DecrementStock(ctx context.Context, productID string, qty int64) error {
	const q = `UPDATE products SET stock = stock - $2 WHERE id = $1;`
	if _, err := s.db.Exec(ctx, q, productID, qty); err != nil {
		return fmt.Errorf("decrement stock %s: %w", productID, err)
	}
	return nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	const q = `
SELECT id, date, items, total, payment_method, cashier_name
FROM transactions
ORDER BY date DESC;
`
	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Transaction, 0, 16)
	for rows.Next() {
		var t domain.Transaction
		var items string
		if err := rows.Scan(&t.ID, &t.Date, &items, &t.Total, &t.PaymentMethod, &t.CashierName); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if err := json.Unmarshal([]byte(items), &t.Items); err != nil {
			return nil, fmt.Errorf("decode items for %s: %w", t.ID, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) InsertTransaction(ctx context.Context, t domain.Transaction) error {
	items, err := json.Marshal(t.Items)
	if err != nil {
		return fmt.Errorf("encode items for %s: %w", t.ID, err)
	}
	const q = `
INSERT INTO transactions (id, date, items, total, payment_method, cashier_name)
VALUES ($1, $2, $3, $4, $5, $6);
`
	if _, err := s.db.Exec(ctx, q, t.ID, t.Date, string(items), t.Total, t.PaymentMethod, t.CashierName); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return storage.ErrDuplicateID
		}
		return fmt.Errorf("insert transaction %s: %w", t.ID, err)
	}
	return nil
}

func (s *Store) GetSettings(ctx context.Context) (*domain.StoreSettings, error) {
	const q = `
SELECT name, address, phone, logo_url, receipt_footer
FROM settings
WHERE id = $1;
`
	var out domain.StoreSettings
	err := s.db.QueryRow(ctx, q, settingsRowID).
		Scan(&out.Name, &out.Address, &out.Phone, &out.LogoURL, &out.ReceiptFooter)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &out, nil
}

func (s *Store) UpsertSettings(ctx context.Context, set domain.StoreSettings) error {
	const q = `
INSERT INTO settings (id, name, address, phone, logo_url, receipt_footer)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	address = EXCLUDED.address,
	phone = EXCLUDED.phone,
	logo_url = EXCLUDED.logo_url,
	receipt_footer = EXCLUDED.receipt_footer;
`
	if _, err := s.db.Exec(ctx, q, settingsRowID, set.Name, set.Address, set.Phone, set.LogoURL, set.ReceiptFooter); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	s.db.Close()
	return nil
}
