package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LineItem struct {
	ID              uuid.UUID       `json:"id"`
	BillID          uuid.UUID       `json:"bill_id"`
	BillableService string          `json:"billable_service,omitempty"`
	Item            string          `json:"item,omitempty"`
	PaymentStatus   string          `json:"payment_status"`
	Quantity        int32           `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	Voided          bool            `json:"voided,omitempty"`
	VoidReason      *string         `json:"void_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// DisplayName is the label shown for the line item. The billable service name
// wins over the item name when both are set.
func (li *LineItem) DisplayName() string {
	if li.BillableService != "" {
		return li.BillableService
	}
	return li.Item
}

// LineTotal is price times quantity, computed on raw values.
func (li *LineItem) LineTotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt32(li.Quantity))
}

// SearchKey is the synthetic text the fuzzy filter matches against: both name
// fields joined by a single space, missing fields contributing empty strings.
func (li *LineItem) SearchKey() string {
	return li.BillableService + " " + li.Item
}
