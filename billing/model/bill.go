package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Bill struct {
	ID             uuid.UUID       `json:"id"`
	PatientID      uuid.UUID       `json:"patient_id"`
	ReceiptNumber  string          `json:"receipt_number"`
	Status         BillStatus      `json:"status"`
	Currency       string          `json:"currency"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	TenderedAmount decimal.Decimal `json:"tendered_amount"`
	LineItems      []LineItem      `json:"line_items,omitempty"`
	DateCreated    time.Time       `json:"date_created"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PendingAmount is the outstanding balance on the bill. It is derived, never
// stored, and intentionally not clamped at zero: an overtendered bill shows a
// negative balance.
func (b *Bill) PendingAmount() decimal.Decimal {
	return b.TotalAmount.Sub(b.TenderedAmount)
}

type BillStatus string

const (
	BillStatusPending BillStatus = "PENDING"
	BillStatusPosted  BillStatus = "POSTED"
	BillStatusPaid    BillStatus = "PAID"
)

// Valid reports whether s is one of the recognized lifecycle statuses.
func (s BillStatus) Valid() bool {
	switch s {
	case BillStatusPending, BillStatusPosted, BillStatusPaid:
		return true
	}
	return false
}
