package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/business/payment_business"
	"encore.app/billing/model"
	"encore.app/billing/workflow"
)

func TestRecordPayment(t *testing.T) {
	billID := uuid.New()

	testCases := []struct {
		name               string
		billID             string
		request            *RecordPaymentRequest
		mockReturn         *model.Bill
		mockError          error
		expectedError      string
		expectBusinessCall bool
		expectSignalCall   bool
	}{
		{
			name:    "partial_payment_posts_bill",
			billID:  billID.String(),
			request: &RecordPaymentRequest{IdempotencyKey: "pay-1", Amount: "200"},
			mockReturn: &model.Bill{
				ID:             billID,
				Status:         model.BillStatusPosted,
				TotalAmount:    decimal.NewFromInt(500),
				TenderedAmount: decimal.NewFromInt(200),
			},
			expectBusinessCall: true,
			expectSignalCall:   true,
		},
		{
			name:    "full_payment_marks_paid",
			billID:  billID.String(),
			request: &RecordPaymentRequest{IdempotencyKey: "pay-2", Amount: "500"},
			mockReturn: &model.Bill{
				ID:             billID,
				Status:         model.BillStatusPaid,
				TotalAmount:    decimal.NewFromInt(500),
				TenderedAmount: decimal.NewFromInt(500),
			},
			expectBusinessCall: true,
			expectSignalCall:   true,
		},
		{
			name:          "invalid_bill_id",
			billID:        "not-a-uuid",
			request:       &RecordPaymentRequest{Amount: "100"},
			expectedError: "invalid bill ID",
		},
		{
			name:          "unparseable_amount",
			billID:        billID.String(),
			request:       &RecordPaymentRequest{Amount: "one hundred"},
			expectedError: "invalid amount",
		},
		{
			name:               "already_paid_bill",
			billID:             billID.String(),
			request:            &RecordPaymentRequest{IdempotencyKey: "pay-3", Amount: "50"},
			mockError:          &errs.Error{Code: errs.FailedPrecondition, Message: "bill is already paid"},
			expectedError:      "bill is already paid",
			expectBusinessCall: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			syncAsync(t)

			mockPayments := payment_business.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)
			service := &Service{payments: mockPayments, temporal: mockTemporal}

			if tc.expectBusinessCall {
				expectedAmount := decimal.RequireFromString(tc.request.Amount)
				mockPayments.EXPECT().
					RecordPayment(gomock.Any(), billID, gomock.Any(), tc.request.IdempotencyKey).
					DoAndReturn(func(ctx context.Context, id uuid.UUID, amount decimal.Decimal, key string) (*model.Bill, error) {
						assert.True(t, amount.Equal(expectedAmount))
						return tc.mockReturn, tc.mockError
					})
			}
			if tc.expectSignalCall {
				mockTemporal.On("SignalWorkflow",
					mock.Anything,
					settlementWorkflowID(billID),
					"",
					workflow.PaymentRecordedSignalName,
					mock.Anything,
				).Return(nil)
			}

			response, err := service.RecordPayment(context.Background(), tc.billID, tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, tc.mockReturn.Status, response.Bill.Status)
			}
		})
	}
}
