package invoice

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store/bills"
)

// CreateBill opens a new PENDING bill for the patient with a fresh receipt
// number.
func (b *business) CreateBill(ctx context.Context, patientID uuid.UUID, currencyCode string) (*model.Bill, error) {
	dbBill, err := b.billRepo.CreateBill(ctx, bills.CreateBillParams{
		PatientID:     patientID,
		ReceiptNumber: generateReceiptNumber(),
		Currency:      currencyCode,
		Status:        string(model.BillStatusPending),
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "bill is duplicated"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create bill"}
	}

	return convertDBBillToModel(dbBill), nil
}

// generateReceiptNumber produces a display identifier. Receipt numbers only
// need to be unique within the active result set, not globally across time.
func generateReceiptNumber() string {
	return "RCPT-" + strings.ToUpper(uuid.NewString()[:8])
}
