// Package state is the in-memory mirror of server state used by the
// presentation layer. It is a read-optimized copy, never the source of
// truth: every reducer rule must match what the server does so
// optimistic updates stay consistent.
package state

import "github.com/layarlegenda59/kasirku/internal/domain"

// AppState is the full mirrored state.
type AppState struct {
	Products     []domain.Product
	Transactions []domain.Transaction
	Settings     domain.StoreSettings
}

// Action is a state transition request.
type Action interface{ isAction() }

type LoadProducts struct{ Products []domain.Product }

type LoadTransactions struct{ Transactions []domain.Transaction }

type AddProduct struct{ Product domain.Product }

type UpdateProduct struct{ Product domain.Product }

type DeleteProduct struct{ ID string }

type UpdateSettings struct{ Settings domain.StoreSettings }

// ProcessTransaction mirrors a committed sale: the transaction is
// prepended (the list is trusted to already be newest-first) and stock
// is decremented per line item, exactly as the server does it.
type ProcessTransaction struct{ Transaction domain.Transaction }

func (LoadProducts) isAction()       {}
func (LoadTransactions) isAction()   {}
func (AddProduct) isAction()         {}
func (UpdateProduct) isAction()      {}
func (DeleteProduct) isAction()      {}
func (UpdateSettings) isAction()     {}
func (ProcessTransaction) isAction() {}

// Reduce applies the action and returns the next state. It is a pure
// function: the input state and its slices are never mutated.
func Reduce(s AppState, a Action) AppState {
	switch act := a.(type) {
	case LoadProducts:
		s.Products = append([]domain.Product(nil), act.Products...)
	case LoadTransactions:
		s.Transactions = append([]domain.Transaction(nil), act.Transactions...)
	case AddProduct:
		s.Products = append(append([]domain.Product(nil), s.Products...), act.Product)
	case UpdateProduct:
		next := make([]domain.Product, len(s.Products))
		for i, p := range s.Products {
			if p.ID == act.Product.ID {
				next[i] = act.Product
			} else {
				next[i] = p
			}
		}
		s.Products = next
	case DeleteProduct:
		next := make([]domain.Product, 0, len(s.Products))
		for _, p := range s.Products {
			if p.ID != act.ID {
				next = append(next, p)
			}
		}
		s.Products = next
	case UpdateSettings:
		s.Settings = act.Settings
	case ProcessTransaction:
		sold := make(map[string]int64, len(act.Transaction.Items))
		for _, it := range act.Transaction.Items {
			sold[it.ProductID] += it.Quantity
		}
		next := make([]domain.Product, len(s.Products))
		for i, p := range s.Products {
			if qty, ok := sold[p.ID]; ok {
				p.Stock -= qty
			}
			next[i] = p
		}
		s.Products = next
		s.Transactions = append([]domain.Transaction{act.Transaction}, s.Transactions...)
	}
	return s
}

// Store holds the current state and applies actions one at a time.
// Application is single-threaded by design.
type Store struct {
	state AppState
}

func NewStore(initial AppState) *Store {
	return &Store{state: initial}
}

// Dispatch applies the action and returns the new state.
func (s *Store) Dispatch(a Action) AppState {
	s.state = Reduce(s.state, a)
	return s.state
}

// State returns the current state.
func (s *Store) State() AppState {
	return s.state
}
