package workflow

import (
	"context"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/billing/business/invoice"
	"encore.app/billing/business/payment"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	InvoiceBusiness invoice.Business
	PaymentBusiness payment.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(invoiceBusiness invoice.Business, paymentBusiness payment.Business) {
	activityDeps = &ActivityDependencies{
		InvoiceBusiness: invoiceBusiness,
		PaymentBusiness: paymentBusiness,
	}
}

// RecalculateBillTotalActivity recomputes the bill total from its live line items
func RecalculateBillTotalActivity(ctx context.Context, billID uuid.UUID) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing recalculate bill total activity", "billID", billID)

	if activityDeps == nil || activityDeps.InvoiceBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	if err := activityDeps.InvoiceBusiness.RecalculateBillTotal(ctx, billID); err != nil {
		logger.Error("Failed to recalculate bill total", "billID", billID, "error", err)
		return err
	}

	logger.Info("Successfully recalculated bill total", "billID", billID)
	return nil
}

// ReconcileSettlementActivity re-checks whether the bill is now fully paid
func ReconcileSettlementActivity(ctx context.Context, billID uuid.UUID) (bool, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing reconcile settlement activity", "billID", billID)

	if activityDeps == nil || activityDeps.PaymentBusiness == nil {
		logger.Error("Activity dependencies not set")
		return false, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	settled, err := activityDeps.PaymentBusiness.ReconcileSettlement(ctx, billID)
	if err != nil {
		logger.Error("Failed to reconcile settlement", "billID", billID, "error", err)
		return false, err
	}

	logger.Info("Reconciled settlement", "billID", billID, "settled", settled)
	return settled, nil
}

// EscalateUnpaidBillActivity flags a bill whose settlement deadline passed
// while a balance is still outstanding.
func EscalateUnpaidBillActivity(ctx context.Context, billID uuid.UUID) error {
	logger := activity.GetLogger(ctx)

	if activityDeps == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	// Escalation is an operational flag today: it surfaces in the worker's
	// logs and metrics. TODO: route escalations to the notification service
	// once billing alerts are wired up there.
	logger.Warn("Bill passed its settlement deadline with an outstanding balance", "billID", billID)
	return nil
}
