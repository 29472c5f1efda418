package billing

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type BillingSummaryRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type BillingSummaryResponse struct {
	Rows       []model.BillRow `json:"rows"`
	TotalCount int64           `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

// BillingSummary returns a page of display-ready bill rows for the patient's
// multi-bill summary table.
//
//encore:api public path=/v1/patients/:patientID/billing-summary method=GET
func (s *Service) BillingSummary(ctx context.Context, patientID string, req *BillingSummaryRequest) (*BillingSummaryResponse, error) {
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

	rows, totalCount, err := s.business.BillingSummary(ctx, pid, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to build billing summary", "error", err, "patient_id", patientID)
		return nil, err
	}

	return &BillingSummaryResponse{
		Rows:       rows,
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}, nil
}
