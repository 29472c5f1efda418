package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/business/invoice"
	"encore.app/billing/model"
	"encore.app/billing/workflow"
)

type AddLineItemRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	BillableService string `json:"billable_service" validate:"max=255"`
	Item            string `json:"item" validate:"max=255"`
	Quantity        int32  `json:"quantity" validate:"required,gt=0"`
	Price           string `json:"price" validate:"required"`
}

type LineItemResponse struct {
	LineItem model.LineItem `json:"line_item"`
}

// AddLineItem appends a line item to a pending bill and nudges the settlement
// workflow to recheck the bill total.
//
//encore:api public path=/v1/bills/:id/line_items method=POST tag:idempotency
func (s *Service) AddLineItem(ctx context.Context, id string, req *AddLineItemRequest) (*LineItemResponse, error) {
	billID, err := uuid.Parse(id)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid price"}
	}

	result, err := s.business.AddLineItem(ctx, billID, invoice.NewLineItem{
		BillableService: req.BillableService,
		Item:            req.Item,
		Quantity:        req.Quantity,
		Price:           price,
	})
	if err != nil {
		rlog.Error("failed to add line item", "error", err, "bill_id", id)
		return nil, err
	}

	s.signalLineItemsChanged(billID, result.ID)
	notifyMutated()

	return &LineItemResponse{LineItem: *result}, nil
}

// Validate implements validation for AddLineItemRequest using go-playground/validator
func (r *AddLineItemRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

// signalLineItemsChanged tells the bill's settlement workflow that its line
// items changed. Signal delivery is best-effort; the store already holds the
// recalculated total.
func (s *Service) signalLineItemsChanged(billID, itemID uuid.UUID) {
	runAsync("signal-line-items-changed", func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(
			ctx,
			settlementWorkflowID(billID),
			"",
			workflow.LineItemsChangedSignalName,
			workflow.LineItemsChangedSignal{LineItemID: itemID},
		)
	})
}
