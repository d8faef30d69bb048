// Package report aggregates sales figures for the dashboard.
package report

import (
	"context"
	"time"

	"github.com/layarlegenda59/kasirku/internal/domain"
)

// Products with less stock than this show up in the low-stock count.
const lowStockThreshold = 15

type Store interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

type Usecase struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Usecase {
	return &Usecase{store: store, now: time.Now}
}

type Summary struct {
	TodayRevenue      int64 `json:"todayRevenue"`
	TodayTransactions int   `json:"todayTransactions"`
	MonthTransactions int   `json:"monthTransactions"`
	ProductCount      int   `json:"productCount"`
	LowStockCount     int   `json:"lowStockCount"`
}

// Summary walks the transaction and product lists and derives the
// figures the dashboard shows.
func (u *Usecase) Summary(ctx context.Context) (*Summary, error) {
	transactions, err := u.store.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	products, err := u.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now().UTC()
	today := now.Format("2006-01-02")
	month := now.Format("2006-01")

	out := &Summary{ProductCount: len(products)}
	for _, t := range transactions {
		d := t.Date.UTC()
		if d.Format("2006-01-02") == today {
			out.TodayRevenue += t.Total
			out.TodayTransactions++
		}
		if d.Format("2006-01") == month {
			out.MonthTransactions++
		}
	}
	for _, p := range products {
		if p.Stock < lowStockThreshold {
			out.LowStockCount++
		}
	}
	return out, nil
}
