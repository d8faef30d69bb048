// Package settings manages the single-row store configuration.
package settings

import (
	"context"

	"github.com/layarlegenda59/kasirku/internal/domain"
)

type Store interface {
	GetSettings(ctx context.Context) (*domain.StoreSettings, error)
	UpsertSettings(ctx context.Context, s domain.StoreSettings) error
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

// Get returns the settings, or nil when they were never written.
// Absence is not an error.
func (u *Usecase) Get(ctx context.Context) (*domain.StoreSettings, error) {
	return u.store.GetSettings(ctx)
}

// Update writes the full settings row. The first write establishes it;
// later writes replace every field.
func (u *Usecase) Update(ctx context.Context, s domain.StoreSettings) error {
	return u.store.UpsertSettings(ctx, s)
}

// Setup seeds default settings when none exist yet. Existing settings
// are left alone.
func (u *Usecase) Setup(ctx context.Context, defaults domain.StoreSettings) error {
	existing, err := u.store.GetSettings(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return u.store.UpsertSettings(ctx, defaults)
}
