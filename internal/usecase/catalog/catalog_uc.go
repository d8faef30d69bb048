// Package catalog manages product records.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/layarlegenda59/kasirku/internal/domain"
)

var ErrInvalidProduct = errors.New("invalid product")

type Store interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpsertProduct(ctx context.Context, p domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) List(ctx context.Context) ([]domain.Product, error) {
	return u.store.ListProducts(ctx)
}

// Upsert inserts the product or fully replaces the row with the same
// id. Add and update are the same operation at this layer; only the id
// generation path differs. SKU is not checked for uniqueness.
func (u *Usecase) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if p.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if err := u.store.UpsertProduct(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes the product unconditionally. Transaction history
// referencing the id is left untouched; ids that do not exist are
// still a success.
func (u *Usecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidProduct)
	}
	return u.store.DeleteProduct(ctx, id)
}
