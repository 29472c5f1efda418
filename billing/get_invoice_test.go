package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/business/invoice"
	"encore.app/billing/domain"
	"encore.app/billing/mocks/business/invoice_business"
	"encore.app/billing/model"
)

func TestGetInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	billID := uuid.New()
	mockBusiness := invoice_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	mockBusiness.EXPECT().
		GetInvoice(gomock.Any(), billID, "blood").
		Return(&invoice.Invoice{
			Bill: model.Bill{ID: billID, Status: model.BillStatusPending},
			Rows: []model.LineItemRow{
				{No: 1, BillItem: "Blood Test", Price: "$100.00", Total: "$300.00"},
			},
			Actions:            domain.LineItemActionsFor(model.BillStatusPending),
			CanModifyLineItems: true,
		}, nil)

	response, err := service.GetInvoice(context.Background(), billID.String(), &GetInvoiceRequest{Search: "blood"})

	require.NoError(t, err)
	require.Len(t, response.Invoice.Rows, 1)
	assert.Equal(t, "Blood Test", response.Invoice.Rows[0].BillItem)
	assert.True(t, response.Invoice.CanModifyLineItems)
}

func TestGetInvoice_InvalidBillID(t *testing.T) {
	service := &Service{}

	response, err := service.GetInvoice(context.Background(), "not-a-uuid", &GetInvoiceRequest{})

	assert.Error(t, err)
	assert.Nil(t, response)
	assert.Contains(t, err.Error(), "invalid bill ID")
}

func TestGetBill_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	billID := uuid.New()
	mockBusiness := invoice_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	mockBusiness.EXPECT().
		GetBill(gomock.Any(), billID).
		Return(nil, &errs.Error{Code: errs.NotFound, Message: "bill not found"})

	response, err := service.GetBill(context.Background(), billID.String())

	assert.Error(t, err)
	assert.Nil(t, response)
	assert.Contains(t, err.Error(), "bill not found")
}

func TestListPatientBills_CarriesOverallStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	patientID := uuid.New()
	mockBusiness := invoice_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	mockBusiness.EXPECT().
		ListPatientBills(gomock.Any(), patientID, int32(10), int32(0)).
		Return([]*model.Bill{
			{ID: uuid.New(), Status: model.BillStatusPaid},
			{ID: uuid.New(), Status: model.BillStatusPending},
		}, int64(2), nil)
	mockBusiness.EXPECT().
		OverallPaymentStatus(gomock.Any(), patientID).
		Return(domain.OverallStatusPartiallyPaid, true, nil)

	response, err := service.ListPatientBills(context.Background(), patientID.String(), &ListPatientBillsRequest{})

	require.NoError(t, err)
	assert.Len(t, response.Bills, 2)
	assert.Equal(t, int64(2), response.TotalCount)
	assert.Equal(t, 10, response.Limit)
	assert.Equal(t, "Partially Paid", response.OverallPaymentStatus)
}

func TestListPatientBills_LimitClamped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	patientID := uuid.New()
	mockBusiness := invoice_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	mockBusiness.EXPECT().
		ListPatientBills(gomock.Any(), patientID, int32(100), int32(0)).
		Return(nil, int64(0), nil)
	mockBusiness.EXPECT().
		OverallPaymentStatus(gomock.Any(), patientID).
		Return(domain.OverallPaymentStatus(""), false, nil)

	response, err := service.ListPatientBills(context.Background(), patientID.String(), &ListPatientBillsRequest{Limit: 5000})

	require.NoError(t, err)
	assert.Equal(t, 100, response.Limit)
	assert.Empty(t, response.OverallPaymentStatus)
}

func TestBillingSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	patientID := uuid.New()
	mockBusiness := invoice_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	mockBusiness.EXPECT().
		BillingSummary(gomock.Any(), patientID, int32(10), int32(0)).
		Return([]model.BillRow{
			{ReceiptNumber: "RCPT-AABBCCDD", TotalAmount: "$500.00", Pending: "$300.00", Status: model.BillStatusPosted},
		}, int64(1), nil)

	response, err := service.BillingSummary(context.Background(), patientID.String(), &BillingSummaryRequest{})

	require.NoError(t, err)
	require.Len(t, response.Rows, 1)
	assert.Equal(t, "RCPT-AABBCCDD", response.Rows[0].ReceiptNumber)
	assert.Equal(t, int64(1), response.TotalCount)
}
