package lineitems

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

type LineItem struct {
	ID              uuid.UUID
	BillID          uuid.UUID
	BillableService pgtype.Text
	Item            pgtype.Text
	PaymentStatus   string
	Quantity        int32
	Price           pgtype.Numeric
	Voided          bool
	VoidReason      pgtype.Text
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type CreateLineItemParams struct {
	BillID          uuid.UUID
	BillableService pgtype.Text
	Item            pgtype.Text
	PaymentStatus   string
	Quantity        int32
	Price           pgtype.Numeric
}

type UpdateLineItemParams struct {
	ID       uuid.UUID
	Quantity int32
	Price    pgtype.Numeric
}

type VoidLineItemParams struct {
	ID         uuid.UUID
	VoidReason string
}

// Querier is the line-item persistence surface consumed by the business and
// domain layers.
type Querier interface {
	GetLineItem(ctx context.Context, id uuid.UUID) (LineItem, error)
	GetLineItemsByBill(ctx context.Context, billID uuid.UUID) ([]LineItem, error)
	CreateLineItem(ctx context.Context, arg CreateLineItemParams) (LineItem, error)
	UpdateLineItem(ctx context.Context, arg UpdateLineItemParams) (LineItem, error)
	VoidLineItem(ctx context.Context, arg VoidLineItemParams) (LineItem, error)
	WithTx(tx pgx.Tx) Querier
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns queries bound to the given transaction.
func (q *Queries) WithTx(tx pgx.Tx) Querier {
	return &Queries{db: tx}
}

const lineItemColumns = `id, bill_id, billable_service, item, payment_status, quantity, price, voided, void_reason, created_at, updated_at`

func scanLineItem(row pgx.Row) (LineItem, error) {
	var li LineItem
	err := row.Scan(
		&li.ID,
		&li.BillID,
		&li.BillableService,
		&li.Item,
		&li.PaymentStatus,
		&li.Quantity,
		&li.Price,
		&li.Voided,
		&li.VoidReason,
		&li.CreatedAt,
		&li.UpdatedAt,
	)
	return li, err
}

const getLineItem = `SELECT ` + lineItemColumns + ` FROM line_items WHERE id = $1`

func (q *Queries) GetLineItem(ctx context.Context, id uuid.UUID) (LineItem, error) {
	return scanLineItem(q.db.QueryRow(ctx, getLineItem, id))
}

const getLineItemsByBill = `
SELECT ` + lineItemColumns + `
FROM line_items
WHERE bill_id = $1 AND NOT voided
ORDER BY created_at ASC`

func (q *Queries) GetLineItemsByBill(ctx context.Context, billID uuid.UUID) ([]LineItem, error) {
	rows, err := q.db.Query(ctx, getLineItemsByBill, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []LineItem
	for rows.Next() {
		li, err := scanLineItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return items, rows.Err()
}

const createLineItem = `
INSERT INTO line_items (bill_id, billable_service, item, payment_status, quantity, price)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + lineItemColumns

func (q *Queries) CreateLineItem(ctx context.Context, arg CreateLineItemParams) (LineItem, error) {
	return scanLineItem(q.db.QueryRow(ctx, createLineItem,
		arg.BillID,
		arg.BillableService,
		arg.Item,
		arg.PaymentStatus,
		arg.Quantity,
		arg.Price,
	))
}

const updateLineItem = `
UPDATE line_items
SET quantity = $2, price = $3, updated_at = now()
WHERE id = $1 AND NOT voided
RETURNING ` + lineItemColumns

func (q *Queries) UpdateLineItem(ctx context.Context, arg UpdateLineItemParams) (LineItem, error) {
	return scanLineItem(q.db.QueryRow(ctx, updateLineItem, arg.ID, arg.Quantity, arg.Price))
}

const voidLineItem = `
UPDATE line_items
SET voided = TRUE, void_reason = $2, updated_at = now()
WHERE id = $1 AND NOT voided
RETURNING ` + lineItemColumns

// VoidLineItem soft-deletes the line item, keeping the audit reason.
func (q *Queries) VoidLineItem(ctx context.Context, arg VoidLineItemParams) (LineItem, error) {
	return scanLineItem(q.db.QueryRow(ctx, voidLineItem, arg.ID, arg.VoidReason))
}
