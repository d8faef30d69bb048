// Package checkout turns a cart into a durable transaction record and
// decrements the stock of every product sold.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/layarlegenda59/kasirku/internal/domain"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrInvalidItem    = errors.New("invalid cart item")
	ErrInvalidPayment = errors.New("invalid payment method")
)

// Store is the slice of the persistence contract checkout needs.
type Store interface {
	InsertTransaction(ctx context.Context, t domain.Transaction) error
	DecrementStock(ctx context.Context, productID string, qty int64) error
}

type Usecase struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Usecase {
	return &Usecase{store: store, now: time.Now}
}

// ProcessInput is the cart as submitted by the till. ID and Date are
// optional; the till historically minted both. Any client-sent total
// is ignored and recomputed from the captured item prices.
type ProcessInput struct {
	ID            string                   `json:"id"`
	Date          time.Time                `json:"date"`
	Items         []domain.TransactionItem `json:"items"`
	PaymentMethod string                   `json:"paymentMethod"`
	CashierName   string                   `json:"cashierName"`
}

// Process validates the cart, persists the transaction and then
// decrements stock per line item.
//
// The stock decrements run sequentially after the record is durable
// and are not atomic as a group: if one fails, earlier items stay
// decremented, later items are never attempted, and the committed
// transaction is not rolled back. The error is still returned so the
// caller knows the catalog may be out of sync.
func (u *Usecase) Process(ctx context.Context, in ProcessInput) (*domain.Transaction, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 || it.Price < 0 {
			return nil, fmt.Errorf("%w: product=%q quantity=%d", ErrInvalidItem, it.ProductID, it.Quantity)
		}
	}
	if !domain.ValidPaymentMethod(in.PaymentMethod) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPayment, in.PaymentMethod)
	}

	// Price at sale is the cart's captured price, never a fresh
	// catalog lookup.
	var total int64
	for _, it := range in.Items {
		total += it.Price * it.Quantity
	}

	t := domain.Transaction{
		ID:            in.ID,
		Date:          in.Date,
		Items:         in.Items,
		Total:         total,
		PaymentMethod: in.PaymentMethod,
		CashierName:   in.CashierName,
	}
	if t.ID == "" {
		t.ID = NewTransactionID(u.now())
	}
	if t.Date.IsZero() {
		t.Date = u.now().UTC()
	}

	if err := u.store.InsertTransaction(ctx, t); err != nil {
		// Fail fast: no stock was touched.
		return nil, err
	}

	for _, it := range t.Items {
		if err := u.store.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
			return nil, fmt.Errorf("stock update after commit of %s: %w", t.ID, err)
		}
	}

	return &t, nil
}

// NewTransactionID derives an id the same way the till always has:
// a TRX prefix over unix milliseconds.
func NewTransactionID(at time.Time) string {
	return fmt.Sprintf("TRX-%d", at.UnixMilli())
}
