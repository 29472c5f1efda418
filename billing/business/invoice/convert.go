package invoice

import (
	"encore.app/billing/model"
	"encore.app/billing/store/bills"
	"encore.app/billing/store/lineitems"
)

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

// convertDBLineItemToModel converts a database LineItem to a domain model LineItem
func convertDBLineItemToModel(dbLineItem lineitems.LineItem) *model.LineItem {
	lineItem := &model.LineItem{
		ID:            dbLineItem.ID,
		BillID:        dbLineItem.BillID,
		PaymentStatus: dbLineItem.PaymentStatus,
		Quantity:      dbLineItem.Quantity,
		Price:         model.NumericToDecimal(dbLineItem.Price),
		Voided:        dbLineItem.Voided,
		CreatedAt:     dbLineItem.CreatedAt.Time,
		UpdatedAt:     dbLineItem.UpdatedAt.Time,
	}

	if dbLineItem.BillableService.Valid {
		lineItem.BillableService = dbLineItem.BillableService.String
	}

	if dbLineItem.Item.Valid {
		lineItem.Item = dbLineItem.Item.String
	}

	if dbLineItem.VoidReason.Valid {
		lineItem.VoidReason = &dbLineItem.VoidReason.String
	}

	return lineItem
}
