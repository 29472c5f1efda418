package workflow

import (
	"github.com/google/uuid"
)

const (
	// Signal names
	PaymentRecordedSignalName  = "payment-recorded"
	LineItemsChangedSignalName = "line-items-changed"
)

// PaymentRecordedSignal notifies the settlement workflow that money was
// tendered against the bill. The activity re-reads the bill for the
// authoritative amounts.
type PaymentRecordedSignal struct {
	BillID uuid.UUID `json:"bill_id"`
}

// LineItemsChangedSignal notifies the settlement workflow that a line item
// was added, edited, or deleted, so the bill total needs recalculating.
type LineItemsChangedSignal struct {
	LineItemID uuid.UUID `json:"line_item_id"`
}
