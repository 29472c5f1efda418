package invoice

import (
	"encore.app/billing/business/currency"
	"encore.app/billing/model"
)

// ProjectLineItemRow maps a line item to its display row. index is the
// position in the filtered sequence; the rendered number is 1-based and
// changes as filtering reorders the list. Price and total pass through the
// currency formatter independently, with the total computed on raw values
// first so formatting never feeds back into arithmetic.
func ProjectLineItemRow(item model.LineItem, index int, currencyCode string, format currency.FormatFunc) model.LineItemRow {
	return model.LineItemRow{
		No:       index + 1,
		ID:       item.ID,
		BillItem: item.DisplayName(),
		Status:   item.PaymentStatus,
		Quantity: item.Quantity,
		Price:    format(item.Price, currencyCode),
		Total:    format(item.LineTotal(), currencyCode),
	}
}

// ProjectBillRow maps a bill to its summary row. The pending amount is
// total minus tendered on raw values, with absent amounts treated as zero and
// no clamping: an overpaid bill shows a negative pending amount.
func ProjectBillRow(bill model.Bill, currencyCode string, format currency.FormatFunc) model.BillRow {
	pending := bill.TotalAmount.Sub(bill.TenderedAmount)

	return model.BillRow{
		ID:            bill.ID,
		ReceiptNumber: bill.ReceiptNumber,
		DateCreated:   bill.DateCreated,
		BilledItems:   len(bill.LineItems),
		TotalAmount:   format(bill.TotalAmount, currencyCode),
		TotalPaid:     format(bill.TenderedAmount, currencyCode),
		Pending:       format(pending, currencyCode),
		Status:        bill.Status,
	}
}
