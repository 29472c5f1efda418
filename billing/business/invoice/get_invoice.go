package invoice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/domain"
	"encore.app/billing/model"
)

// Invoice is the display-ready invoice view of a single bill: projected,
// filtered line-item rows plus the mutating actions currently available.
type Invoice struct {
	Bill               model.Bill              `json:"bill"`
	Rows               []model.LineItemRow     `json:"rows"`
	Actions            []domain.LineItemAction `json:"actions"`
	CanModifyLineItems bool                    `json:"can_modify_line_items"`
}

// GetInvoice loads a bill and projects its line items into table rows,
// narrowed by the search query. Row numbering follows the filtered sequence.
func (b *business) GetInvoice(ctx context.Context, billID uuid.UUID, search string) (*Invoice, error) {
	bill, err := b.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}

	filtered := FilterLineItems(bill.LineItems, search)

	rows := make([]model.LineItemRow, len(filtered))
	for i, item := range filtered {
		rows[i] = ProjectLineItemRow(item, i, bill.Currency, b.formatter.Format)
	}

	return &Invoice{
		Bill:               *bill,
		Rows:               rows,
		Actions:            domain.LineItemActionsFor(bill.Status),
		CanModifyLineItems: domain.CanModifyLineItems(bill.Status),
	}, nil
}

// GetBill retrieves a bill by ID with its live line items.
func (b *business) GetBill(ctx context.Context, id uuid.UUID) (*model.Bill, error) {
	dbBill, err := b.billRepo.GetBill(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "bill not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get bill"}
	}

	bill := convertDBBillToModel(dbBill)

	lineItems, err := b.getLineItemsByBill(ctx, id)
	if err != nil {
		return nil, err
	}
	bill.LineItems = lineItems

	return bill, nil
}

func (b *business) getLineItemsByBill(ctx context.Context, billID uuid.UUID) ([]model.LineItem, error) {
	dbLineItems, err := b.lineItemRepo.GetLineItemsByBill(ctx, billID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []model.LineItem{}, nil
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get line items"}
	}

	lineItems := make([]model.LineItem, len(dbLineItems))
	for i, dbLineItem := range dbLineItems {
		lineItems[i] = *convertDBLineItemToModel(dbLineItem)
	}

	return lineItems, nil
}
