package billing

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/business/invoice"
)

type GetInvoiceRequest struct {
	// Search fuzzy-filters the line items. Callers are expected to debounce
	// keystrokes; the filter result does not depend on it.
	Search string `query:"search"`
}

type InvoiceResponse struct {
	Invoice invoice.Invoice `json:"invoice"`
}

// GetInvoice returns the invoice table view of a bill: display-ready line
// item rows, optionally narrowed by a fuzzy search query, plus the available
// line-item actions.
//
//encore:api public path=/v1/bills/:id/invoice method=GET
func (s *Service) GetInvoice(ctx context.Context, id string, req *GetInvoiceRequest) (*InvoiceResponse, error) {
	billID, err := uuid.Parse(id)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}

	result, err := s.business.GetInvoice(ctx, billID, req.Search)
	if err != nil {
		rlog.Error("failed to get invoice", "error", err, "id", id)
		return nil, err
	}

	return &InvoiceResponse{
		Invoice: *result,
	}, nil
}
