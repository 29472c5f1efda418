package invoice

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"encore.app/billing/business/currency"
	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/store/bills"
	"encore.app/billing/store/lineitems"
)

type Business interface {
	CreateBill(ctx context.Context, patientID uuid.UUID, currencyCode string) (*model.Bill, error)
	ListPatientBills(ctx context.Context, patientID uuid.UUID, limit, offset int32) ([]*model.Bill, int64, error)
	GetBill(ctx context.Context, id uuid.UUID) (*model.Bill, error)
	GetInvoice(ctx context.Context, billID uuid.UUID, search string) (*Invoice, error)
	BillingSummary(ctx context.Context, patientID uuid.UUID, limit, offset int32) ([]model.BillRow, int64, error)
	OverallPaymentStatus(ctx context.Context, patientID uuid.UUID) (domain.OverallPaymentStatus, bool, error)

	AddLineItem(ctx context.Context, billID uuid.UUID, item NewLineItem) (*model.LineItem, error)
	VoidLineItem(ctx context.Context, billID, itemID uuid.UUID, reason string) error
	UpdateLineItem(ctx context.Context, billID, itemID uuid.UUID, quantity int32, price decimal.Decimal) (*model.LineItem, error)
	RecalculateBillTotal(ctx context.Context, billID uuid.UUID) error
}

// business handles the invoice view and line-item mutations for patient bills
type business struct {
	billRepo     bills.Querier
	lineItemRepo lineitems.Querier
	formatter    currency.Business
	stateMachine domain.StateMachine
}

// NewInvoiceBusiness creates the invoice business layer
func NewInvoiceBusiness(
	billRepo bills.Querier,
	lineItemRepo lineitems.Querier,
	formatter currency.Business,
	stateMachine domain.StateMachine,
) Business {
	return &business{
		billRepo:     billRepo,
		lineItemRepo: lineItemRepo,
		formatter:    formatter,
		stateMachine: stateMachine,
	}
}
