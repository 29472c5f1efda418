package invoice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store/bills"
	"encore.app/billing/store/lineitems"
)

// UpdateLineItem changes a line item's quantity and unit price, gated by the
// parent bill's status exactly like deletion, and recalculates the bill total
// in the same transaction.
func (b *business) UpdateLineItem(ctx context.Context, billID, itemID uuid.UUID, quantity int32, price decimal.Decimal) (*model.LineItem, error) {
	if quantity <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "quantity must be positive"}
	}
	if price.IsNegative() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "price must not be negative"}
	}

	var updated *model.LineItem

	err := b.stateMachine.ExecuteWithLock(ctx, billID, func(currentBill bills.Bill) error {
		if currentBill.Status != string(model.BillStatusPending) {
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "bill is no longer pending, line items can no longer be modified",
			}
		}

		txLineItems := b.stateMachine.GetTxLineItemRepo()

		item, err := txLineItems.GetLineItem(ctx, itemID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "line item not found"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to load line item"}
		}
		if item.BillID != billID {
			return &errs.Error{Code: errs.NotFound, Message: "line item not found on this bill"}
		}
		if item.Voided {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "line item is deleted"}
		}

		dbItem, err := txLineItems.UpdateLineItem(ctx, lineitems.UpdateLineItemParams{
			ID:       itemID,
			Quantity: quantity,
			Price:    model.DecimalToNumeric(price),
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update line item"}
		}

		if _, err := b.stateMachine.UpdateBillTotalTx(ctx, billID); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to recalculate bill total"}
		}

		updated = convertDBLineItemToModel(dbItem)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
