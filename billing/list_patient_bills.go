package billing

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type ListPatientBillsRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type ListPatientBillsResponse struct {
	Bills      []model.Bill `json:"bills"`
	TotalCount int64        `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`

	// OverallPaymentStatus is the summary status across all of the patient's
	// bills; empty when the patient has no recognized bills to summarize.
	OverallPaymentStatus string `json:"overall_payment_status,omitempty"`
}

//encore:api public path=/v1/patients/:patientID/bills method=GET
func (s *Service) ListPatientBills(ctx context.Context, patientID string, req *ListPatientBillsRequest) (*ListPatientBillsResponse, error) {
	pid, err := uuid.Parse(patientID)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid patient ID"}
	}

	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	patientBills, totalCount, err := s.business.ListPatientBills(ctx, pid, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to list patient bills", "error", err, "patient_id", patientID)
		return nil, err
	}

	status, ok, err := s.business.OverallPaymentStatus(ctx, pid)
	if err != nil {
		rlog.Error("failed to derive overall payment status", "error", err, "patient_id", patientID)
		return nil, err
	}

	response := &ListPatientBillsResponse{
		Bills:      make([]model.Bill, len(patientBills)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}
	if ok {
		response.OverallPaymentStatus = string(status)
	}

	for i, bill := range patientBills {
		response.Bills[i] = *bill
	}

	return response, nil
}
