package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
	"encore.app/billing/workflow"
)

// defaultSettlementWindow is how long a bill may stay unpaid before the
// settlement workflow escalates it.
const defaultSettlementWindow = 30 * 24 * time.Hour

type CreateBillRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	PatientID          string    `json:"patient_id" validate:"required,uuid"`
	Currency           string    `json:"currency" validate:"required,len=3,alpha"`
	SettlementDeadline time.Time `json:"settlement_deadline"`
}

type BillResponse struct {
	Bill model.Bill `json:"bill"`
}

//encore:api public path=/v1/bills method=POST tag:idempotency
func (s *Service) CreateBill(ctx context.Context, req *CreateBillRequest) (*BillResponse, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid patient ID"}
	}

	result, err := s.business.CreateBill(ctx, patientID, req.Currency)
	if err != nil {
		rlog.Error("failed to create bill", "error", err)
		return nil, err
	}

	// Start the Temporal workflow tracking this bill until settlement.
	if wfErr := s.startSettlementWorkflow(ctx, result, req.SettlementDeadline); wfErr != nil {
		// The bill is already persisted; surface the workflow problem in logs only.
		rlog.Error("workflow start issue", "bill_id", result.ID, "workflow_id", settlementWorkflowID(result.ID), "error", wfErr)
	}

	return &BillResponse{
		Bill: *result,
	}, nil
}

// Validate implements validation for CreateBillRequest using go-playground/validator
func (r *CreateBillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if !r.SettlementDeadline.IsZero() && r.SettlementDeadline.Before(time.Now()) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "settlement_deadline must be in the future"}
	}

	return nil
}

// settlementWorkflowID is the workflow ID convention for a bill's settlement
// workflow, shared by the start and signal paths.
func settlementWorkflowID(billID uuid.UUID) string {
	return fmt.Sprintf("bill-settlement-%s", billID)
}

// startSettlementWorkflow starts the Temporal workflow for bill settlement
func (s *Service) startSettlementWorkflow(ctx context.Context, bill *model.Bill, deadline time.Time) error {
	if deadline.IsZero() {
		deadline = time.Now().Add(defaultSettlementWindow)
	}

	workflowID := settlementWorkflowID(bill.ID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.BillSettlementWorkflowParams{
		BillID:             bill.ID,
		SettlementDeadline: deadline,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.BillSettlement, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "bill_id", bill.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
