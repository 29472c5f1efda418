package billing

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type PaymentStatusResponse struct {
	// Status is one of "Paid", "Partially Paid", "Pending"; empty when
	// HasStatus is false and no tag should render.
	Status    string `json:"status,omitempty"`
	HasStatus bool   `json:"has_status"`
}

// PaymentStatus returns the single summary payment status across all of the
// patient's bills.
//
//encore:api public path=/v1/patients/:patientID/payment-status method=GET
func (s *Service) PaymentStatus(ctx context.Context, patientID string) (*PaymentStatusResponse, error) {
	pid, err := uuid.Parse(patientID)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid patient ID"}
	}

	status, ok, err := s.business.OverallPaymentStatus(ctx, pid)
	if err != nil {
		rlog.Error("failed to derive overall payment status", "error", err, "patient_id", patientID)
		return nil, err
	}

	response := &PaymentStatusResponse{HasStatus: ok}
	if ok {
		response.Status = string(status)
	}
	return response, nil
}
