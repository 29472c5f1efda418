package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/business/invoice_business"
	"encore.app/billing/workflow"
)

// syncAsync makes runAsync execute inline so tests are deterministic.
func syncAsync(t *testing.T) {
	original := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) { _ = fn(context.Background()) }
	t.Cleanup(func() { runAsync = original })
}

func TestVoidLineItem(t *testing.T) {
	billID := uuid.New()
	itemID := uuid.New()

	testCases := []struct {
		name               string
		billID             string
		itemID             string
		request            *VoidLineItemRequest
		mockVoidError      error
		mockSignalError    error
		expectedError      string
		expectBusinessCall bool
		expectSignalCall   bool
	}{
		{
			name:               "successful_void_with_workflow_signal",
			billID:             billID.String(),
			itemID:             itemID.String(),
			request:            &VoidLineItemRequest{IdempotencyKey: "void-key-1", Reason: "entered in error"},
			expectBusinessCall: true,
			expectSignalCall:   true,
		},
		{
			name:               "void_succeeds_even_when_signal_fails",
			billID:             billID.String(),
			itemID:             itemID.String(),
			request:            &VoidLineItemRequest{IdempotencyKey: "void-key-2", Reason: "duplicate charge"},
			mockSignalError:    errors.New("workflow signal failed"),
			expectBusinessCall: true,
			expectSignalCall:   true,
		},
		{
			name:          "invalid_bill_id",
			billID:        "not-a-uuid",
			itemID:        itemID.String(),
			request:       &VoidLineItemRequest{Reason: "cleanup"},
			expectedError: "invalid bill ID",
		},
		{
			name:          "invalid_line_item_id",
			billID:        billID.String(),
			itemID:        "not-a-uuid",
			request:       &VoidLineItemRequest{Reason: "cleanup"},
			expectedError: "invalid line item ID",
		},
		{
			name:               "locked_bill_rejected",
			billID:             billID.String(),
			itemID:             itemID.String(),
			request:            &VoidLineItemRequest{Reason: "too late"},
			mockVoidError:      &errs.Error{Code: errs.InvalidArgument, Message: "bill is posted, line items can no longer be modified"},
			expectedError:      "bill is posted",
			expectBusinessCall: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			syncAsync(t)

			mockBusiness := invoice_business.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)
			service := &Service{business: mockBusiness, temporal: mockTemporal}

			if tc.expectBusinessCall {
				mockBusiness.EXPECT().
					VoidLineItem(gomock.Any(), billID, itemID, tc.request.Reason).
					Return(tc.mockVoidError)
			}
			if tc.expectSignalCall {
				mockTemporal.On("SignalWorkflow",
					mock.Anything,
					settlementWorkflowID(billID),
					"",
					workflow.LineItemsChangedSignalName,
					mock.Anything,
				).Return(tc.mockSignalError)
			}

			response, err := service.VoidLineItem(context.Background(), tc.billID, tc.itemID, tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.True(t, response.Voided)
			}
		})
	}
}

func TestVoidLineItemRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *VoidLineItemRequest
		expectedError string
	}{
		{
			name:    "valid_request",
			request: &VoidLineItemRequest{Reason: "entered in error"},
		},
		{
			name:          "missing_reason",
			request:       &VoidLineItemRequest{},
			expectedError: "required",
		},
		{
			name:          "whitespace_only_reason",
			request:       &VoidLineItemRequest{Reason: "   "},
			expectedError: "a deletion reason is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
