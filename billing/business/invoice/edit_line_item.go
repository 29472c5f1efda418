package invoice

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/domain"
	"encore.app/billing/model"
)

// LineItemEditor is the external editing surface. The editor owns the field
// semantics; this package only gates whether editing may start.
type LineItemEditor interface {
	OpenEditor(ctx context.Context, bill model.Bill, item model.LineItem, onMutate func()) error
}

// OpenEditLineItem opens the external editor for a line item, pre-populated
// with the bill and item. It is gated identically to deletion: only line
// items of a PENDING bill are editable.
func OpenEditLineItem(ctx context.Context, editor LineItemEditor, bill model.Bill, item model.LineItem, onMutate func()) error {
	if !domain.CanModifyLineItems(bill.Status) {
		return &errs.Error{
			Code:    errs.FailedPrecondition,
			Message: "bill is no longer pending, line items can no longer be edited",
		}
	}
	return editor.OpenEditor(ctx, bill, item, onMutate)
}
