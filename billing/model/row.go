package model

import (
	"time"

	"github.com/google/uuid"
)

// LineItemRow is a display-ready projection of a LineItem for the invoice
// table. Monetary cells are already formatted; No is the 1-based position in
// the filtered sequence, not a stable property of the item.
type LineItemRow struct {
	No       int       `json:"no"`
	ID       uuid.UUID `json:"id"`
	BillItem string    `json:"bill_item"`
	Status   string    `json:"status"`
	Quantity int32     `json:"quantity"`
	Price    string    `json:"price"`
	Total    string    `json:"total"`
}

// BillRow is a display-ready projection of a Bill for the multi-bill summary.
type BillRow struct {
	ID            uuid.UUID  `json:"id"`
	ReceiptNumber string     `json:"receipt_number"`
	DateCreated   time.Time  `json:"date_created"`
	BilledItems   int        `json:"billed_items"`
	TotalAmount   string     `json:"total_amount"`
	TotalPaid     string     `json:"total_paid"`
	Pending       string     `json:"pending"`
	Status        BillStatus `json:"status"`
}
