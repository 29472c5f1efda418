package billing

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/billing/business/currency"
	"encore.app/billing/business/invoice"
	"encore.app/billing/business/payment"
	"encore.app/billing/domain"
	"encore.app/billing/store"
	"encore.app/billing/workflow"
)

var billingDB = sqldb.NewDatabase("patient_billing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

const taskQueue = "bill-settlement"

//encore:service
type Service struct {
	business invoice.Business
	payments payment.Business
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](billingDB)

	rlog.Info("Initializing store", "pgxdb", pgxdb)
	repo := store.NewStore(pgxdb)

	stateMachine := domain.NewBillStateMachine(pgxdb)
	formatter := currency.NewCurrencyBusiness()

	invoiceBusiness := invoice.NewInvoiceBusiness(repo.Bills, repo.LineItems, formatter, stateMachine)
	paymentBusiness := payment.NewPaymentBusiness(stateMachine)

	workflow.SetActivityDependencies(invoiceBusiness, paymentBusiness)

	temporalClient, err := client.Dial(client.Options{})
	if err != nil {
		return nil, fmt.Errorf("dial temporal: %w", err)
	}

	w := worker.New(temporalClient, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.BillSettlement)
	w.RegisterActivity(workflow.RecalculateBillTotalActivity)
	w.RegisterActivity(workflow.ReconcileSettlementActivity)
	w.RegisterActivity(workflow.EscalateUnpaidBillActivity)
	if err := w.Start(); err != nil {
		return nil, fmt.Errorf("start settlement worker: %w", err)
	}

	return &Service{
		business: invoiceBusiness,
		payments: paymentBusiness,
		temporal: temporalClient,
		worker:   w,
	}, nil
}
