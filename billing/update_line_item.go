package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type UpdateLineItemRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Quantity int32  `json:"quantity" validate:"required,gt=0"`
	Price    string `json:"price" validate:"required"`
}

// UpdateLineItem edits the quantity and price of a line item on a pending
// bill. Edits to posted or paid bills are rejected.
//
//encore:api public path=/v1/bills/:billID/line_items/:itemID method=PUT tag:idempotency
func (s *Service) UpdateLineItem(ctx context.Context, billID, itemID string, req *UpdateLineItemRequest) (*LineItemResponse, error) {
	bid, err := uuid.Parse(billID)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}
	iid, err := uuid.Parse(itemID)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid line item ID"}
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid price"}
	}

	result, err := s.business.UpdateLineItem(ctx, bid, iid, req.Quantity, price)
	if err != nil {
		rlog.Error("failed to update line item", "error", err, "bill_id", billID, "line_item_id", itemID)
		return nil, err
	}

	s.signalLineItemsChanged(bid, iid)
	notifyMutated()

	return &LineItemResponse{LineItem: *result}, nil
}

// Validate implements validation for UpdateLineItemRequest using go-playground/validator
func (r *UpdateLineItemRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
