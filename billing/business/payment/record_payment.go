package payment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store/bills"
	"encore.app/billing/store/payments"
)

// RecordPayment records a tendered amount under the bill row lock and
// advances the status: a partial tender posts the bill, a full tender marks
// it paid. Paid bills accept no further payments.
func (b *business) RecordPayment(ctx context.Context, billID uuid.UUID, amount decimal.Decimal, idempotencyKey string) (*model.Bill, error) {
	if !amount.IsPositive() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "payment amount must be positive"}
	}

	var result *model.Bill

	err := b.stateMachine.ExecuteWithLock(ctx, billID, func(currentBill bills.Bill) error {
		switch currentBill.Status {
		case string(model.BillStatusPending), string(model.BillStatusPosted):
			// Recognized, payment allowed.
		case string(model.BillStatusPaid):
			return &errs.Error{Code: errs.FailedPrecondition, Message: "bill is already paid"}
		default:
			return &errs.Error{Code: errs.Internal, Message: "bill is in an unrecognized status"}
		}

		txPayments := b.stateMachine.GetTxPaymentRepo()
		if _, err := txPayments.CreatePayment(ctx, payments.CreatePaymentParams{
			BillID:         billID,
			Amount:         model.DecimalToNumeric(amount),
			IdempotencyKey: idempotencyKey,
		}); err != nil {
			var e *pgconn.PgError
			if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
				return &errs.Error{Code: errs.AlreadyExists, Message: "payment is duplicated"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to record payment"}
		}

		updatedBill, err := b.stateMachine.AddTenderedAmountTx(ctx, billID, model.DecimalToNumeric(amount))
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to apply tendered amount"}
		}

		tendered := model.NumericToDecimal(updatedBill.TenderedAmount)
		total := model.NumericToDecimal(updatedBill.TotalAmount)

		switch {
		case tendered.GreaterThanOrEqual(total):
			if err := b.stateMachine.TransitionToPaidTx(ctx, billID); err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to mark bill paid"}
			}
			updatedBill.Status = string(model.BillStatusPaid)
		case currentBill.Status == string(model.BillStatusPending):
			if err := b.stateMachine.TransitionToPostedTx(ctx, billID); err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to post bill"}
			}
			updatedBill.Status = string(model.BillStatusPosted)
		}

		result = convertDBBillToModel(updatedBill)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ReconcileSettlement re-evaluates settlement after the bill total changed
// (for example after a line item was deleted): a posted bill whose tendered
// amount now covers the total becomes paid.
func (b *business) ReconcileSettlement(ctx context.Context, billID uuid.UUID) (bool, error) {
	settled := false

	err := b.stateMachine.ExecuteWithLock(ctx, billID, func(currentBill bills.Bill) error {
		if currentBill.Status != string(model.BillStatusPosted) {
			settled = currentBill.Status == string(model.BillStatusPaid)
			return nil
		}

		tendered := model.NumericToDecimal(currentBill.TenderedAmount)
		total := model.NumericToDecimal(currentBill.TotalAmount)
		if tendered.GreaterThanOrEqual(total) {
			if err := b.stateMachine.TransitionToPaidTx(ctx, billID); err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to mark bill paid"}
			}
			settled = true
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return settled, nil
}

// convertDBBillToModel converts a database Bill to a domain model Bill
func convertDBBillToModel(dbBill bills.Bill) *model.Bill {
	return &model.Bill{
		ID:             dbBill.ID,
		PatientID:      dbBill.PatientID,
		ReceiptNumber:  dbBill.ReceiptNumber,
		Status:         model.BillStatus(dbBill.Status),
		Currency:       dbBill.Currency,
		TotalAmount:    model.NumericToDecimal(dbBill.TotalAmount),
		TenderedAmount: model.NumericToDecimal(dbBill.TenderedAmount),
		DateCreated:    dbBill.CreatedAt.Time,
		UpdatedAt:      dbBill.UpdatedAt.Time,
	}
}
