package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/workflow"
)

type RecordPaymentRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Amount string `json:"amount" validate:"required"`
}

// RecordPayment applies a tendered amount to a bill. Partial payments post
// the bill; a payment covering the full total marks it paid.
//
//encore:api public path=/v1/bills/:id/payments method=POST tag:idempotency
func (s *Service) RecordPayment(ctx context.Context, id string, req *RecordPaymentRequest) (*BillResponse, error) {
	billID, err := uuid.Parse(id)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid amount"}
	}

	result, err := s.payments.RecordPayment(ctx, billID, amount, req.IdempotencyKey)
	if err != nil {
		rlog.Error("failed to record payment", "error", err, "bill_id", id)
		return nil, err
	}

	s.signalPaymentRecorded(billID)
	notifyMutated()

	return &BillResponse{Bill: *result}, nil
}

// Validate implements validation for RecordPaymentRequest using go-playground/validator
func (r *RecordPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

// signalPaymentRecorded tells the bill's settlement workflow that a payment
// landed. The workflow re-reads the bill, so the signal carries no amounts.
func (s *Service) signalPaymentRecorded(billID uuid.UUID) {
	runAsync("signal-payment-recorded", func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(
			ctx,
			settlementWorkflowID(billID),
			"",
			workflow.PaymentRecordedSignalName,
			workflow.PaymentRecordedSignal{BillID: billID},
		)
	})
}
