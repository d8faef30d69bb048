package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/layarlegenda59/kasirku/internal/domain"
	"github.com/layarlegenda59/kasirku/internal/storage"
)

// fakeStore records writes in memory so the commit flow can be tested
// without a database.
type fakeStore struct {
	stock         map[string]int64
	inserted      []domain.Transaction
	failInsert    error
	failDecrement map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{stock: map[string]int64{}}
}

func (f *fakeStore) InsertTransaction(_ context.Context, t domain.Transaction) error {
	if f.failInsert != nil {
		return f.failInsert
	}
	for _, existing := range f.inserted {
		if existing.ID == t.ID {
			return storage.ErrDuplicateID
		}
	}
	f.inserted = append(f.inserted, t)
	return nil
}

func (f *fakeStore) DecrementStock(_ context.Context, productID string, qty int64) error {
	if err := f.failDecrement[productID]; err != nil {
		return err
	}
	f.stock[productID] -= qty
	return nil
}

func cart(items ...domain.TransactionItem) ProcessInput {
	return ProcessInput{
		Items:         items,
		PaymentMethod: domain.PaymentCash,
		CashierName:   "Andi",
	}
}

func TestProcess_TotalAndStock(t *testing.T) {
	store := newFakeStore()
	store.stock["P1"] = 10
	store.stock["P2"] = 5
	uc := New(store)

	out, err := uc.Process(context.Background(), cart(
		domain.TransactionItem{ProductID: "P1", Quantity: 2, Price: 18000},
		domain.TransactionItem{ProductID: "P2", Quantity: 1, Price: 22000},
	))
	require.NoError(t, err)

	require.Equal(t, int64(58000), out.Total)
	require.Equal(t, int64(8), store.stock["P1"])
	require.Equal(t, int64(4), store.stock["P2"])
	require.Len(t, store.inserted, 1)
	require.Equal(t, out.ID, store.inserted[0].ID)
}

func TestProcess_PriceFrozenAtSale(t *testing.T) {
	store := newFakeStore()
	store.stock["P1"] = 10
	uc := New(store)

	// The cart captured 18000; the catalog price changed afterwards.
	// The committed record must keep the captured price.
	in := cart(domain.TransactionItem{ProductID: "P1", Quantity: 1, Price: 18000})

	out, err := uc.Process(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, int64(18000), out.Items[0].Price)
	require.Equal(t, int64(18000), out.Total)
}

func TestProcess_ClientTotalIgnored(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	in := cart(domain.TransactionItem{ProductID: "P1", Quantity: 3, Price: 1000})
	out, err := uc.Process(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, int64(3000), out.Total)
}

func TestProcess_OversellAllowed(t *testing.T) {
	store := newFakeStore()
	store.stock["P1"] = 2
	uc := New(store)

	_, err := uc.Process(context.Background(), cart(
		domain.TransactionItem{ProductID: "P1", Quantity: 5, Price: 1000},
	))
	require.NoError(t, err)
	require.Equal(t, int64(-3), store.stock["P1"])
}

func TestProcess_EmptyCartRejected(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	_, err := uc.Process(context.Background(), cart())
	require.ErrorIs(t, err, ErrEmptyCart)
	require.Empty(t, store.inserted)
	require.Empty(t, store.stock)
}

func TestProcess_InvalidQuantityRejected(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	for _, item := range []domain.TransactionItem{
		{ProductID: "P1", Quantity: 0, Price: 1000},
		{ProductID: "P1", Quantity: -1, Price: 1000},
		{ProductID: "", Quantity: 1, Price: 1000},
	} {
		_, err := uc.Process(context.Background(), cart(item))
		require.ErrorIs(t, err, ErrInvalidItem)
	}
	require.Empty(t, store.inserted)
}

func TestProcess_InvalidPaymentRejected(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	in := cart(domain.TransactionItem{ProductID: "P1", Quantity: 1, Price: 1000})
	in.PaymentMethod = "Cek"
	_, err := uc.Process(context.Background(), in)
	require.ErrorIs(t, err, ErrInvalidPayment)
}

func TestProcess_InsertFailureLeavesStockUntouched(t *testing.T) {
	store := newFakeStore()
	store.stock["P1"] = 10
	store.failInsert = errors.New("backend down")
	uc := New(store)

	_, err := uc.Process(context.Background(), cart(
		domain.TransactionItem{ProductID: "P1", Quantity: 2, Price: 1000},
	))
	require.Error(t, err)
	require.Equal(t, int64(10), store.stock["P1"])
}

func TestProcess_PartialDecrementFailureKeepsTransaction(t *testing.T) {
	store := newFakeStore()
	store.stock["P1"] = 10
	store.stock["P2"] = 10
	store.stock["P3"] = 10
	store.failDecrement = map[string]error{"P2": errors.New("write failed")}
	uc := New(store)

	_, err := uc.Process(context.Background(), cart(
		domain.TransactionItem{ProductID: "P1", Quantity: 1, Price: 1000},
		domain.TransactionItem{ProductID: "P2", Quantity: 1, Price: 1000},
		domain.TransactionItem{ProductID: "P3", Quantity: 1, Price: 1000},
	))
	require.Error(t, err)

	// The transaction stays durable, the first item stays decremented
	// and the item after the failure was never attempted.
	require.Len(t, store.inserted, 1)
	require.Equal(t, int64(9), store.stock["P1"])
	require.Equal(t, int64(10), store.stock["P2"])
	require.Equal(t, int64(10), store.stock["P3"])
}

func TestProcess_GeneratesIDAndDate(t *testing.T) {
	store := newFakeStore()
	uc := New(store)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return at }

	out, err := uc.Process(context.Background(), cart(
		domain.TransactionItem{ProductID: "P1", Quantity: 1, Price: 1000},
	))
	require.NoError(t, err)
	require.Equal(t, NewTransactionID(at), out.ID)
	require.Equal(t, at, out.Date)
}

func TestProcess_KeepsClientIDAndDate(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	in := cart(domain.TransactionItem{ProductID: "P1", Quantity: 1, Price: 1000})
	in.ID = "TRX-1714557600000"
	in.Date = at

	out, err := uc.Process(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, "TRX-1714557600000", out.ID)
	require.Equal(t, at, out.Date)
}

func TestProcess_DuplicateIDFails(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	in := cart(domain.TransactionItem{ProductID: "P1", Quantity: 1, Price: 1000})
	in.ID = "TRX-1"
	_, err := uc.Process(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Process(context.Background(), in)
	require.ErrorIs(t, err, storage.ErrDuplicateID)
	require.Len(t, store.inserted, 1)
}
