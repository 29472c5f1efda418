package invoice

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store/bills"
)

// ListPatientBills returns a page of the patient's bills, newest first, each
// with its live line items, plus the total bill count for paging.
func (b *business) ListPatientBills(ctx context.Context, patientID uuid.UUID, limit, offset int32) ([]*model.Bill, int64, error) {
	dbBills, err := b.billRepo.ListBillsByPatient(ctx, bills.ListBillsByPatientParams{
		PatientID: patientID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list bills"}
	}

	totalCount, err := b.billRepo.CountBillsByPatient(ctx, patientID)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count bills"}
	}

	result := make([]*model.Bill, len(dbBills))
	for i, dbBill := range dbBills {
		bill := convertDBBillToModel(dbBill)

		lineItems, err := b.getLineItemsByBill(ctx, bill.ID)
		if err != nil {
			return nil, 0, err
		}
		bill.LineItems = lineItems
		result[i] = bill
	}

	return result, totalCount, nil
}

// BillingSummary returns a page of display-ready bill rows for the multi-bill
// summary table.
func (b *business) BillingSummary(ctx context.Context, patientID uuid.UUID, limit, offset int32) ([]model.BillRow, int64, error) {
	patientBills, totalCount, err := b.ListPatientBills(ctx, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]model.BillRow, len(patientBills))
	for i, bill := range patientBills {
		rows[i] = ProjectBillRow(*bill, bill.Currency, b.formatter.Format)
	}

	return rows, totalCount, nil
}
