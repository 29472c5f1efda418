package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Payment struct {
	ID             uuid.UUID
	BillID         uuid.UUID
	Amount         pgtype.Numeric
	IdempotencyKey string
	CreatedAt      pgtype.Timestamptz
}

type CreatePaymentParams struct {
	BillID         uuid.UUID
	Amount         pgtype.Numeric
	IdempotencyKey string
}

type Querier interface {
	CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error)
	GetPaymentsByBill(ctx context.Context, billID uuid.UUID) ([]Payment, error)
	WithTx(tx pgx.Tx) Querier
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx pgx.Tx) Querier {
	return &Queries{db: tx}
}

const paymentColumns = `id, bill_id, amount, idempotency_key, created_at`

func scanPayment(row pgx.Row) (Payment, error) {
	var p Payment
	err := row.Scan(&p.ID, &p.BillID, &p.Amount, &p.IdempotencyKey, &p.CreatedAt)
	return p, err
}

const createPayment = `
INSERT INTO payments (bill_id, amount, idempotency_key)
VALUES ($1, $2, $3)
RETURNING ` + paymentColumns

func (q *Queries) CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error) {
	return scanPayment(q.db.QueryRow(ctx, createPayment, arg.BillID, arg.Amount, arg.IdempotencyKey))
}

const getPaymentsByBill = `
SELECT ` + paymentColumns + `
FROM payments
WHERE bill_id = $1
ORDER BY created_at ASC`

func (q *Queries) GetPaymentsByBill(ctx context.Context, billID uuid.UUID) ([]Payment, error) {
	rows, err := q.db.Query(ctx, getPaymentsByBill, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
