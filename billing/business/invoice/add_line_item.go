package invoice

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store/bills"
	"encore.app/billing/store/lineitems"
)

// NewLineItem is the caller-supplied part of a line item. Exactly one of
// BillableService and Item is expected to identify the billed thing, but both
// may be set; BillableService wins for display.
type NewLineItem struct {
	BillableService string
	Item            string
	Quantity        int32
	Price           decimal.Decimal
}

// AddLineItem appends a line item to a PENDING bill, with the bill row locked
// so the status check and the insert cannot race a settlement, and
// recalculates the bill total in the same transaction.
func (b *business) AddLineItem(ctx context.Context, billID uuid.UUID, item NewLineItem) (*model.LineItem, error) {
	if item.BillableService == "" && item.Item == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "a billable service or item is required"}
	}
	if item.Quantity <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "quantity must be positive"}
	}
	if item.Price.IsNegative() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "price must not be negative"}
	}

	var result *model.LineItem

	err := b.stateMachine.ExecuteWithLock(ctx, billID, func(currentBill bills.Bill) error {
		switch currentBill.Status {
		case string(model.BillStatusPending):
			txLineItems := b.stateMachine.GetTxLineItemRepo()

			dbItem, err := txLineItems.CreateLineItem(ctx, lineitems.CreateLineItemParams{
				BillID:          billID,
				BillableService: pgtype.Text{String: item.BillableService, Valid: item.BillableService != ""},
				Item:            pgtype.Text{String: item.Item, Valid: item.Item != ""},
				PaymentStatus:   string(model.BillStatusPending),
				Quantity:        item.Quantity,
				Price:           model.DecimalToNumeric(item.Price),
			})
			if err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to create line item"}
			}

			if _, err := b.stateMachine.UpdateBillTotalTx(ctx, billID); err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to recalculate bill total"}
			}

			result = convertDBLineItemToModel(dbItem)
			return nil

		case string(model.BillStatusPosted):
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "bill is posted, line items can no longer be added",
			}

		case string(model.BillStatusPaid):
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "bill is paid, line items can no longer be added",
			}

		default:
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "bill is not in a valid state for line items",
			}
		}
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
