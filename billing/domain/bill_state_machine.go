package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store/bills"
	"encore.app/billing/store/lineitems"
	"encore.app/billing/store/payments"
)

// StateMachine owns bill state transitions and the transaction boundaries
// around them. Mutations of a bill or its line items run inside
// ExecuteWithLock so the bill row stays locked for the duration.
type StateMachine interface {
	// ExecuteWithLock runs businessLogic with the bill row locked inside a
	// transaction, committing on nil and rolling back on error.
	ExecuteWithLock(ctx context.Context, billID uuid.UUID, businessLogic func(bills.Bill) error) error

	// Transition helpers for use within ExecuteWithLock callbacks.
	TransitionToPostedTx(ctx context.Context, id uuid.UUID) error
	TransitionToPaidTx(ctx context.Context, id uuid.UUID) error

	// AddTenderedAmountTx records tendered money against the bill within the
	// current transaction and returns the updated row.
	AddTenderedAmountTx(ctx context.Context, id uuid.UUID, amount pgtype.Numeric) (bills.Bill, error)

	// UpdateBillTotalTx recalculates the bill total from its live line items
	// within the current transaction.
	UpdateBillTotalTx(ctx context.Context, id uuid.UUID) (bills.Bill, error)

	// Transaction-aware repositories for related writes under the same lock.
	GetTxLineItemRepo() lineitems.Querier
	GetTxPaymentRepo() payments.Querier
}

// BillStateMachine is the Postgres-backed StateMachine. It holds the pool and
// hands transaction-bound queriers to callbacks while a lock is held.
type BillStateMachine struct {
	db           *pgxpool.Pool
	billRepo     *bills.Queries
	lineItemRepo *lineitems.Queries
	paymentRepo  *payments.Queries

	// Transaction-scoped state, set for the duration of ExecuteWithLock.
	txBills     bills.Querier
	txLineItems lineitems.Querier
	txPayments  payments.Querier
}

func NewBillStateMachine(db *pgxpool.Pool) *BillStateMachine {
	return &BillStateMachine{
		db:           db,
		billRepo:     bills.New(db),
		lineItemRepo: lineitems.New(db),
		paymentRepo:  payments.New(db),
	}
}

func (sm *BillStateMachine) ExecuteWithLock(ctx context.Context, billID uuid.UUID, businessLogic func(bills.Bill) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	sm.txBills = sm.billRepo.WithTx(tx)
	sm.txLineItems = sm.lineItemRepo.WithTx(tx)
	sm.txPayments = sm.paymentRepo.WithTx(tx)

	currentBill, err := sm.txBills.GetBillForUpdate(ctx, billID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "bill not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock bill"}
	}

	if err := businessLogic(currentBill); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit bill mutation"}
	}

	return nil
}

// TransitionToPostedTx moves the bill to POSTED. Callers hold the row lock and
// have already validated the current status.
func (sm *BillStateMachine) TransitionToPostedTx(ctx context.Context, id uuid.UUID) error {
	_, err := sm.txBills.UpdateBillStatus(ctx, bills.UpdateBillStatusParams{
		ID:     id,
		Status: string(model.BillStatusPosted),
	})
	return err
}

// TransitionToPaidTx moves the bill to PAID.
func (sm *BillStateMachine) TransitionToPaidTx(ctx context.Context, id uuid.UUID) error {
	_, err := sm.txBills.UpdateBillStatus(ctx, bills.UpdateBillStatusParams{
		ID:     id,
		Status: string(model.BillStatusPaid),
	})
	return err
}

func (sm *BillStateMachine) AddTenderedAmountTx(ctx context.Context, id uuid.UUID, amount pgtype.Numeric) (bills.Bill, error) {
	return sm.txBills.AddTenderedAmount(ctx, bills.AddTenderedAmountParams{ID: id, Amount: amount})
}

func (sm *BillStateMachine) UpdateBillTotalTx(ctx context.Context, id uuid.UUID) (bills.Bill, error) {
	return sm.txBills.UpdateBillTotal(ctx, id)
}

func (sm *BillStateMachine) GetTxLineItemRepo() lineitems.Querier {
	return sm.txLineItems
}

func (sm *BillStateMachine) GetTxPaymentRepo() payments.Querier {
	return sm.txPayments
}
