package bills

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so the same queries run
// inside and outside transactions.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Bill struct {
	ID             uuid.UUID
	PatientID      uuid.UUID
	ReceiptNumber  string
	Status         string
	Currency       string
	TotalAmount    pgtype.Numeric
	TenderedAmount pgtype.Numeric
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type CreateBillParams struct {
	PatientID     uuid.UUID
	ReceiptNumber string
	Currency      string
	Status        string
}

type ListBillsByPatientParams struct {
	PatientID uuid.UUID
	Limit     int32
	Offset    int32
}

type UpdateBillStatusParams struct {
	ID     uuid.UUID
	Status string
}

type AddTenderedAmountParams struct {
	ID     uuid.UUID
	Amount pgtype.Numeric
}

// Querier is the bill persistence surface consumed by the business and domain
// layers.
type Querier interface {
	CreateBill(ctx context.Context, arg CreateBillParams) (Bill, error)
	GetBill(ctx context.Context, id uuid.UUID) (Bill, error)
	GetBillForUpdate(ctx context.Context, id uuid.UUID) (Bill, error)
	GetBillsByPatient(ctx context.Context, patientID uuid.UUID) ([]Bill, error)
	ListBillsByPatient(ctx context.Context, arg ListBillsByPatientParams) ([]Bill, error)
	CountBillsByPatient(ctx context.Context, patientID uuid.UUID) (int64, error)
	UpdateBillStatus(ctx context.Context, arg UpdateBillStatusParams) (Bill, error)
	UpdateBillTotal(ctx context.Context, id uuid.UUID) (Bill, error)
	AddTenderedAmount(ctx context.Context, arg AddTenderedAmountParams) (Bill, error)
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

const billColumns = `id, patient_id, receipt_number, status, currency, total_amount, tendered_amount, created_at, updated_at`

func scanBill(row pgx.Row) (Bill, error) {
	var b Bill
	err := row.Scan(
		&b.ID,
		&b.PatientID,
		&b.ReceiptNumber,
		&b.Status,
		&b.Currency,
		&b.TotalAmount,
		&b.TenderedAmount,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

const createBill = `
INSERT INTO bills (patient_id, receipt_number, currency, status)
VALUES ($1, $2, $3, $4)
RETURNING ` + billColumns

func (q *Queries) CreateBill(ctx context.Context, arg CreateBillParams) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, createBill, arg.PatientID, arg.ReceiptNumber, arg.Currency, arg.Status))
}

const getBill = `SELECT ` + billColumns + ` FROM bills WHERE id = $1`

func (q *Queries) GetBill(ctx context.Context, id uuid.UUID) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, getBill, id))
}

const getBillForUpdate = `SELECT ` + billColumns + ` FROM bills WHERE id = $1 FOR UPDATE`

// GetBillForUpdate locks the bill row until the surrounding transaction ends.
func (q *Queries) GetBillForUpdate(ctx context.Context, id uuid.UUID) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, getBillForUpdate, id))
}

const getBillsByPatient = `
SELECT ` + billColumns + `
FROM bills
WHERE patient_id = $1
ORDER BY created_at DESC`

// GetBillsByPatient returns every bill for the patient, for aggregation that
// must see the full set rather than a page.
func (q *Queries) GetBillsByPatient(ctx context.Context, patientID uuid.UUID) ([]Bill, error) {
	rows, err := q.db.Query(ctx, getBillsByPatient, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

const listBillsByPatient = `
SELECT ` + billColumns + `
FROM bills
WHERE patient_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

func (q *Queries) ListBillsByPatient(ctx context.Context, arg ListBillsByPatientParams) ([]Bill, error) {
	rows, err := q.db.Query(ctx, listBillsByPatient, arg.PatientID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

const countBillsByPatient = `SELECT COUNT(*) FROM bills WHERE patient_id = $1`

func (q *Queries) CountBillsByPatient(ctx context.Context, patientID uuid.UUID) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countBillsByPatient, patientID).Scan(&count)
	return count, err
}

const updateBillStatus = `
UPDATE bills
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING ` + billColumns

func (q *Queries) UpdateBillStatus(ctx context.Context, arg UpdateBillStatusParams) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, updateBillStatus, arg.ID, arg.Status))
}

const updateBillTotal = `
UPDATE bills
SET total_amount = (
        SELECT COALESCE(SUM(price * quantity), 0)
        FROM line_items
        WHERE bill_id = $1 AND NOT voided
    ),
    updated_at = now()
WHERE id = $1
RETURNING ` + billColumns

// UpdateBillTotal recomputes the bill total from its live line items in the
// database, so the calculation is atomic with respect to concurrent changes.
func (q *Queries) UpdateBillTotal(ctx context.Context, id uuid.UUID) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, updateBillTotal, id))
}

const addTenderedAmount = `
UPDATE bills
SET tendered_amount = tendered_amount + $2, updated_at = now()
WHERE id = $1
RETURNING ` + billColumns

func (q *Queries) AddTenderedAmount(ctx context.Context, arg AddTenderedAmountParams) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, addTenderedAmount, arg.ID, arg.Amount))
}
