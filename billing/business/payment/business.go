package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"encore.app/billing/domain"
	"encore.app/billing/model"
)

type Business interface {
	// RecordPayment records a tendered amount against a bill and advances its
	// lifecycle status, returning the updated bill.
	RecordPayment(ctx context.Context, billID uuid.UUID, amount decimal.Decimal, idempotencyKey string) (*model.Bill, error)

	// ReconcileSettlement re-checks a bill's settlement after its total
	// changed, reporting whether the bill is now fully paid.
	ReconcileSettlement(ctx context.Context, billID uuid.UUID) (bool, error)
}

// business handles payment recording and settlement transitions
type business struct {
	stateMachine domain.StateMachine
}

// NewPaymentBusiness creates the payment business layer
func NewPaymentBusiness(stateMachine domain.StateMachine) Business {
	return &business{stateMachine: stateMachine}
}
