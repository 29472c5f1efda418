package invoice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/domain/state_machine"
	"encore.app/billing/mocks/store/lineitem_repo"
	"encore.app/billing/model"
	"encore.app/billing/store/bills"
	"encore.app/billing/store/lineitems"
)

func TestAddLineItem(t *testing.T) {
	billID := uuid.New()
	itemID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSM := state_machine.NewMockStateMachine(ctrl)
	mockItems := lineitem_repo.NewMockQuerier(ctrl)

	lockPassthrough(mockSM, billID, model.BillStatusPending)
	mockSM.EXPECT().GetTxLineItemRepo().Return(mockItems)
	mockItems.EXPECT().
		CreateLineItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, arg lineitems.CreateLineItemParams) (lineitems.LineItem, error) {
			assert.Equal(t, billID, arg.BillID)
			assert.Equal(t, "Blood Test", arg.BillableService.String)
			assert.Equal(t, string(model.BillStatusPending), arg.PaymentStatus)
			return lineitems.LineItem{
				ID:              itemID,
				BillID:          billID,
				BillableService: arg.BillableService,
				PaymentStatus:   arg.PaymentStatus,
				Quantity:        arg.Quantity,
				Price:           arg.Price,
			}, nil
		})
	mockSM.EXPECT().UpdateBillTotalTx(gomock.Any(), billID).Return(bills.Bill{ID: billID}, nil)

	business := &business{stateMachine: mockSM}
	result, err := business.AddLineItem(context.Background(), billID, NewLineItem{
		BillableService: "Blood Test",
		Quantity:        3,
		Price:           decimal.NewFromInt(100),
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, itemID, result.ID)
	assert.Equal(t, "Blood Test", result.DisplayName())
	assert.Equal(t, int32(3), result.Quantity)
}

func TestAddLineItem_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSM := state_machine.NewMockStateMachine(ctrl)
	business := &business{stateMachine: mockSM}

	testCases := []struct {
		name          string
		item          NewLineItem
		expectedError string
	}{
		{
			name:          "no_name",
			item:          NewLineItem{Quantity: 1, Price: decimal.NewFromInt(10)},
			expectedError: "a billable service or item is required",
		},
		{
			name:          "zero_quantity",
			item:          NewLineItem{Item: "Gauze", Quantity: 0, Price: decimal.NewFromInt(10)},
			expectedError: "quantity must be positive",
		},
		{
			name:          "negative_price",
			item:          NewLineItem{Item: "Gauze", Quantity: 1, Price: decimal.NewFromInt(-10)},
			expectedError: "price must not be negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := business.AddLineItem(context.Background(), uuid.New(), tc.item)

			assert.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}

func TestAddLineItem_LockedBillRejected(t *testing.T) {
	billID := uuid.New()

	testCases := []struct {
		name          string
		status        model.BillStatus
		expectedError string
	}{
		{name: "posted_bill", status: model.BillStatusPosted, expectedError: "bill is posted"},
		{name: "paid_bill", status: model.BillStatusPaid, expectedError: "bill is paid"},
		{name: "unknown_status", status: "CANCELLED", expectedError: "not in a valid state"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSM := state_machine.NewMockStateMachine(ctrl)
			lockPassthrough(mockSM, billID, tc.status)

			business := &business{stateMachine: mockSM}
			result, err := business.AddLineItem(context.Background(), billID, NewLineItem{
				Item:     "Gauze",
				Quantity: 1,
				Price:    decimal.NewFromInt(10),
			})

			assert.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}
