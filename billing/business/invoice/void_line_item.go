package invoice

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store/bills"
	"encore.app/billing/store/lineitems"
)

// VoidLineItem soft-deletes a line item with an audit reason and recalculates
// the bill total in the same transaction. The bill row is locked for the
// duration so the status check and the void cannot race a settlement.
//
// Only PENDING bills accept line-item changes; every other status leaves the
// items locked.
func (b *business) VoidLineItem(ctx context.Context, billID, itemID uuid.UUID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "a deletion reason is required"}
	}

	return b.stateMachine.ExecuteWithLock(ctx, billID, func(currentBill bills.Bill) error {
		switch currentBill.Status {
		case string(model.BillStatusPending):
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
				return &errs.Error{Code: errs.FailedPrecondition, Message: "line item is already deleted"}
			}

			if _, err := txLineItems.VoidLineItem(ctx, lineitems.VoidLineItemParams{
				ID:         itemID,
				VoidReason: reason,
			}); err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to delete line item"}
			}

			if _, err := b.stateMachine.UpdateBillTotalTx(ctx, billID); err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to recalculate bill total"}
			}

			return nil

		case string(model.BillStatusPosted):
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "bill is posted, line items can no longer be modified",
			}

		case string(model.BillStatusPaid):
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "bill is paid, line items can no longer be modified",
			}

		default:
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "bill is not in a valid state for line item changes",
			}
		}
	})
}

// RecalculateBillTotal recomputes the bill total from its live line items
// under the bill row lock.
func (b *business) RecalculateBillTotal(ctx context.Context, billID uuid.UUID) error {
	return b.stateMachine.ExecuteWithLock(ctx, billID, func(currentBill bills.Bill) error {
		_, err := b.stateMachine.UpdateBillTotalTx(ctx, billID)
		return err
	})
}
