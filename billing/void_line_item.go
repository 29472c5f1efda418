package billing

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type VoidLineItemRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	// Reason is the audit note recorded against the voided item. Whitespace-only
	// reasons are rejected.
	Reason string `json:"reason" validate:"required,max=255"`
}

type VoidLineItemResponse struct {
	Voided bool `json:"voided"`
}

// VoidLineItem soft-deletes a line item on a pending bill, recording the
// caller's reason for audit.
//
//encore:api public path=/v1/bills/:billID/line_items/:itemID/void method=POST tag:idempotency
func (s *Service) VoidLineItem(ctx context.Context, billID, itemID string, req *VoidLineItemRequest) (*VoidLineItemResponse, error) {
	bid, err := uuid.Parse(billID)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}
	iid, err := uuid.Parse(itemID)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid line item ID"}
	}

	if err := s.business.VoidLineItem(ctx, bid, iid, req.Reason); err != nil {
		rlog.Error("failed to void line item", "error", err, "bill_id", billID, "line_item_id", itemID)
		return nil, err
	}

	s.signalLineItemsChanged(bid, iid)
	notifyMutated()

	return &VoidLineItemResponse{Voided: true}, nil
}

// Validate implements validation for VoidLineItemRequest using go-playground/validator
func (r *VoidLineItemRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if strings.TrimSpace(r.Reason) == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "a deletion reason is required"}
	}
	return nil
}
