// Package redis implements the storage contract on a Redis key-value
// store. Products and transactions live in hashes keyed by id with
// JSON document values; listing reads the hash and sorts in process so
// callers see the same ordering as the relational backends.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/layarlegenda59/kasirku/internal/domain"
	"github.com/layarlegenda59/kasirku/internal/storage"
)

const (
	keyProducts     = "kasirku:products"
	keyTransactions = "kasirku:transactions"
	keySettings     = "kasirku:settings"
)

// Store is the key-value backend.
type Store struct {
	client *goredis.Client
}

// Open connects to Redis at addr and verifies the connection.
func Open(ctx context.Context, addr string) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return &Store{client: client}, nil
}

// NewWithClient wraps an existing client (used in tests).
func NewWithClient(client *goredis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	vals, err := s.client.HGetAll(ctx, keyProducts).Result()
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]domain.Product, 0, len(vals))
	for id, raw := range vals {
		var p domain.Product
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("decode product %s: %w", id, err)
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpsertProduct(ctx context.Context, p domain.Product) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode product %s: %w", p.ID, err)
	}
	if err := s.client.HSet(ctx, keyProducts, p.ID, raw).Err(); err != nil {
		return fmt.Errorf("upsert product %s: %w", p.ID, err)
	}
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	// HDel of a missing field deletes nothing and still succeeds.
	if err := s.client.HDel(ctx, keyProducts, id).Err(); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

func (s *Store) DecrementStock(ctx context.Context, productID string, qty int64) error {
	// Read-modify-write of the product document. The system runs a
	// single writer, so no watch/retry loop is needed here.
	raw, err := s.client.HGet(ctx, keyProducts, productID).Result()
	if errors.Is(err, goredis.Nil) {
		// Unknown product: same outcome as an UPDATE matching no rows.
		return nil
	}
	if err != nil {
		return fmt.Errorf("decrement stock %s: %w", productID, err)
	}
	var p domain.Product
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return fmt.Errorf("decode product %s: %w", productID, err)
	}
	p.Stock -= qty
	updated, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode product %s: %w", productID, err)
	}
	if err := s.client.HSet(ctx, keyProducts, productID, updated).Err(); err != nil {
		return fmt.Errorf("decrement stock %s: %w", productID, err)
	}
	return nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	vals, err := s.client.HGetAll(ctx, keyTransactions).Result()
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	out := make([]domain.Transaction, 0, len(vals))
	for id, raw := range vals {
		var t domain.Transaction
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			return nil, fmt.Errorf("decode transaction %s: %w", id, err)
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *Store) InsertTransaction(ctx context.Context, t domain.Transaction) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode transaction %s: %w", t.ID, err)
	}
	ok, err := s.client.HSetNX(ctx, keyTransactions, t.ID, raw).Result()
	if err != nil {
		return fmt.Errorf("insert transaction %s: %w", t.ID, err)
	}
	if !ok {
		return storage.ErrDuplicateID
	}
	return nil
}

func (s *Store) GetSettings(ctx context.Context) (*domain.StoreSettings, error) {
	raw, err := s.client.Get(ctx, keySettings).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	var out domain.StoreSettings
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &out, nil
}

func (s *Store) UpsertSettings(ctx context.Context, set domain.StoreSettings) error {
	raw, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.client.Set(ctx, keySettings, raw, 0).Err(); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
