package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is a single tender recorded against a bill.
type Payment struct {
	ID             uuid.UUID       `json:"id"`
	BillID         uuid.UUID       `json:"bill_id"`
	Amount         decimal.Decimal `json:"amount"`
	IdempotencyKey string          `json:"idempotency_key"`
	CreatedAt      time.Time       `json:"created_at"`
}
