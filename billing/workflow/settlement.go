package workflow

import (
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// BillSettlementWorkflowParams contains parameters for starting the
// settlement workflow
type BillSettlementWorkflowParams struct {
	BillID             uuid.UUID `json:"bill_id"`
	SettlementDeadline time.Time `json:"settlement_deadline"`
}

// BillSettlement tracks one bill from creation until it is fully paid.
// Payment and line-item signals drive total recalculation and settlement
// checks; a deadline timer escalates bills that stay unpaid.
func BillSettlement(ctx workflow.Context, params BillSettlementWorkflowParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting bill settlement workflow", "billID", params.BillID, "deadline", params.SettlementDeadline)

	paymentCh := workflow.GetSignalChannel(ctx, PaymentRecordedSignalName)
	lineItemsCh := workflow.GetSignalChannel(ctx, LineItemsChangedSignalName)

	deadlineDelay := params.SettlementDeadline.Sub(workflow.Now(ctx))
	if deadlineDelay < 0 {
		deadlineDelay = 0
	}
	deadlineTimer := workflow.NewTimer(ctx, deadlineDelay)

	settled := false
	escalated := false

	for !settled {
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(paymentCh, func(c workflow.ReceiveChannel, more bool) {
			var signal PaymentRecordedSignal
			c.Receive(ctx, &signal)
			logger.Info("Payment recorded, checking settlement", "billID", signal.BillID)

			done, err := reconcileSettlement(ctx, params.BillID)
			if err != nil {
				logger.Error("Failed to reconcile settlement after payment", "billID", params.BillID, "error", err)
				return
			}
			settled = done
		})

		selector.AddReceive(lineItemsCh, func(c workflow.ReceiveChannel, more bool) {
			var signal LineItemsChangedSignal
			c.Receive(ctx, &signal)
			logger.Info("Line items changed, recalculating total", "billID", params.BillID, "lineItemID", signal.LineItemID)

			if err := recalculateBillTotal(ctx, params.BillID); err != nil {
				logger.Error("Failed to recalculate bill total", "billID", params.BillID, "error", err)
				return
			}

			// A shrunk total can settle an already-posted bill.
			done, err := reconcileSettlement(ctx, params.BillID)
			if err != nil {
				logger.Error("Failed to reconcile settlement after line item change", "billID", params.BillID, "error", err)
				return
			}
			settled = done
		})

		if !escalated {
			selector.AddFuture(deadlineTimer, func(f workflow.Future) {
				logger.Info("Settlement deadline reached", "billID", params.BillID)
				escalated = true

				if err := escalateUnpaidBill(ctx, params.BillID); err != nil {
					logger.Error("Failed to escalate unpaid bill", "billID", params.BillID, "error", err)
				}
			})
		}

		selector.Select(ctx)
	}

	logger.Info("Bill settlement workflow completed", "billID", params.BillID)
	return nil
}

// recalculateBillTotal executes the RecalculateBillTotal activity
func recalculateBillTotal(ctx workflow.Context, billID uuid.UUID) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, RecalculateBillTotalActivity, billID).Get(ctx, nil)
}

// reconcileSettlement executes the ReconcileSettlement activity
func reconcileSettlement(ctx workflow.Context, billID uuid.UUID) (bool, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    1 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var settled bool
	err := workflow.ExecuteActivity(activityCtx, ReconcileSettlementActivity, billID).Get(ctx, &settled)
	return settled, err
}

// escalateUnpaidBill executes the EscalateUnpaidBill activity
func escalateUnpaidBill(ctx workflow.Context, billID uuid.UUID) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, EscalateUnpaidBillActivity, billID).Get(ctx, nil)
}
