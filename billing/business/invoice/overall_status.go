package invoice

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"encore.app/billing/domain"
	"encore.app/billing/model"
)

// OverallPaymentStatus derives the patient's single summary payment status
// from all of their bills. The second return value is false when there is
// nothing to display.
func (b *business) OverallPaymentStatus(ctx context.Context, patientID uuid.UUID) (domain.OverallPaymentStatus, bool, error) {
	dbBills, err := b.billRepo.GetBillsByPatient(ctx, patientID)
	if err != nil {
		return "", false, &errs.Error{Code: errs.Internal, Message: "failed to get bills"}
	}

	patientBills := make([]model.Bill, len(dbBills))
	for i, dbBill := range dbBills {
		patientBills[i] = *convertDBBillToModel(dbBill)
	}

	status, ok := domain.DeriveOverallPaymentStatus(patientBills)
	return status, ok, nil
}
