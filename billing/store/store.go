package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/billing/store/bills"
	"encore.app/billing/store/lineitems"
	"encore.app/billing/store/payments"
)

// Store combines all domain-specific queriers.
type Store struct {
	Bills     bills.Querier
	LineItems lineitems.Querier
	Payments  payments.Querier
}

// NewStore creates a new Store with all domain queriers.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Bills:     bills.New(db),
		LineItems: lineitems.New(db),
		Payments:  payments.New(db),
	}
}
