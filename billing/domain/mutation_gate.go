package domain

import (
	"encore.app/billing/model"
)

// CanModifyLineItems reports whether a bill's line items may currently be
// edited or deleted. Mutability is governed solely by the parent bill's
// lifecycle status: once a bill leaves PENDING its line items are locked.
func CanModifyLineItems(status model.BillStatus) bool {
	return status == model.BillStatusPending
}

// LineItemAction describes one mutating action offered on a line item.
// Locked actions stay listed but disabled, so availability rules remain
// visible to the caller.
type LineItemAction struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

const (
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// LineItemActionsFor lists the edit and delete actions for a line item under
// the given parent bill status.
func LineItemActionsFor(status model.BillStatus) []LineItemAction {
	enabled := CanModifyLineItems(status)
	return []LineItemAction{
		{Name: ActionEdit, Enabled: enabled},
		{Name: ActionDelete, Enabled: enabled},
	}
}
