package invoice

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"encore.app/billing/domain"
	"encore.app/billing/model"
)

// Deleter performs the external line-item delete operation.
type Deleter interface {
	DeleteLineItem(ctx context.Context, itemID uuid.UUID, reason string) error
}

// Notifier is the user-visible notification sink.
type Notifier interface {
	Success(title, subtitle string)
	Error(title, subtitle string)
}

const deleteFailedFallback = "Unable to delete line item. Please try again."

// DeleteConfirmation sequences the delete of a single line item: open the
// confirmation, capture an audit reason, confirm, and either close on success
// or stay open for retry on failure. It replaces a dialog-dispose callback
// with explicit transitions so it needs no dialog host.
//
// One confirmation instance guards one line item: at most one delete may be
// in flight per instance, while unrelated items proceed independently.
type DeleteConfirmation struct {
	bill     model.Bill
	item     model.LineItem
	deleter  Deleter
	notifier Notifier
	onMutate func()

	mu       sync.Mutex
	open     bool
	inFlight bool
	reason   string
}

func NewDeleteConfirmation(bill model.Bill, item model.LineItem, deleter Deleter, notifier Notifier, onMutate func()) *DeleteConfirmation {
	return &DeleteConfirmation{
		bill:     bill,
		item:     item,
		deleter:  deleter,
		notifier: notifier,
		onMutate: onMutate,
	}
}

// Open starts the confirmation. It fails when the parent bill has left
// PENDING: the delete action is visible but disabled on locked bills.
func (c *DeleteConfirmation) Open() error {
	if !domain.CanModifyLineItems(c.bill.Status) {
		return &errs.Error{
			Code:    errs.FailedPrecondition,
			Message: "bill is no longer pending, line items can no longer be deleted",
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
	c.reason = ""
	return nil
}

// SetReason records the free-text audit reason as the user types it.
func (c *DeleteConfirmation) SetReason(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reason = reason
}

// CanConfirm reports whether the confirm action is currently enabled: the
// confirmation is open, nothing is in flight, and the trimmed reason is
// non-empty.
func (c *DeleteConfirmation) CanConfirm() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open && !c.inFlight && strings.TrimSpace(c.reason) != ""
}

// InFlight reports whether a delete call is outstanding.
func (c *DeleteConfirmation) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// IsOpen reports whether the confirmation is showing.
func (c *DeleteConfirmation) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Cancel dismisses the confirmation. A delete already in flight has its
// result discarded when it lands.
func (c *DeleteConfirmation) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
}

// Confirm runs the delete with the captured reason. On success the mutate
// callback fires exactly once, a success notification is emitted, and the
// confirmation closes. On failure the most specific available message is
// surfaced as an error notification and the confirmation stays open with the
// in-flight flag cleared, so the user can retry or cancel.
func (c *DeleteConfirmation) Confirm(ctx context.Context) error {
	c.mu.Lock()
	if !c.open {
		c.mu.Unlock()
		return &errs.Error{Code: errs.FailedPrecondition, Message: "confirmation is not open"}
	}
	if c.inFlight {
		c.mu.Unlock()
		return &errs.Error{Code: errs.Aborted, Message: "delete is already in progress"}
	}
	reason := strings.TrimSpace(c.reason)
	if reason == "" {
		c.mu.Unlock()
		return &errs.Error{Code: errs.InvalidArgument, Message: "a deletion reason is required"}
	}
	c.inFlight = true
	c.mu.Unlock()

	err := c.deleter.DeleteLineItem(ctx, c.item.ID, reason)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false

	// Torn down or cancelled while in flight: discard the result without
	// notifications or invalidation.
	if !c.open {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err != nil {
		c.notifier.Error("Failed to delete line item", bestErrorMessage(err))
		return err
	}

	if c.onMutate != nil {
		c.onMutate()
	}
	c.notifier.Success("Line item deleted", "Bill line item deleted successfully")
	c.open = false
	return nil
}

// bestErrorMessage picks the most specific message available: the server
// error detail, then the error text, then a generic fallback.
func bestErrorMessage(err error) string {
	var apiErr *errs.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return deleteFailedFallback
}
