package invoice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/domain/state_machine"
	"encore.app/billing/mocks/store/lineitem_repo"
	"encore.app/billing/model"
	"encore.app/billing/store/bills"
	"encore.app/billing/store/lineitems"
)

// lockPassthrough makes ExecuteWithLock invoke the business callback with a
// bill in the given status, standing in for the transactional wrapper.
func lockPassthrough(sm *state_machine.MockStateMachine, billID uuid.UUID, status model.BillStatus) {
	sm.EXPECT().
		ExecuteWithLock(gomock.Any(), billID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uuid.UUID, fn func(bills.Bill) error) error {
			return fn(bills.Bill{ID: id, Status: string(status)})
		})
}

func TestVoidLineItem(t *testing.T) {
	billID := uuid.New()
	itemID := uuid.New()

	testCases := []struct {
		name          string
		billStatus    model.BillStatus
		reason        string
		setupItems    func(m *lineitem_repo.MockQuerier, sm *state_machine.MockStateMachine)
		expectedError string
	}{
		{
			name:       "happy_case",
			billStatus: model.BillStatusPending,
			reason:     "entered in error",
			setupItems: func(m *lineitem_repo.MockQuerier, sm *state_machine.MockStateMachine) {
				m.EXPECT().
					GetLineItem(gomock.Any(), itemID).
					Return(lineitems.LineItem{ID: itemID, BillID: billID}, nil)
				m.EXPECT().
					VoidLineItem(gomock.Any(), lineitems.VoidLineItemParams{ID: itemID, VoidReason: "entered in error"}).
					Return(lineitems.LineItem{ID: itemID, BillID: billID, Voided: true}, nil)
				sm.EXPECT().
					UpdateBillTotalTx(gomock.Any(), billID).
					Return(bills.Bill{ID: billID}, nil)
			},
		},
		{
			name:       "reason_is_trimmed",
			billStatus: model.BillStatusPending,
			reason:     "  duplicate charge  ",
			setupItems: func(m *lineitem_repo.MockQuerier, sm *state_machine.MockStateMachine) {
				m.EXPECT().
					GetLineItem(gomock.Any(), itemID).
					Return(lineitems.LineItem{ID: itemID, BillID: billID}, nil)
				m.EXPECT().
					VoidLineItem(gomock.Any(), lineitems.VoidLineItemParams{ID: itemID, VoidReason: "duplicate charge"}).
					Return(lineitems.LineItem{ID: itemID, BillID: billID, Voided: true}, nil)
				sm.EXPECT().
					UpdateBillTotalTx(gomock.Any(), billID).
					Return(bills.Bill{ID: billID}, nil)
			},
		},
		{
			name:       "line_item_not_found",
			billStatus: model.BillStatusPending,
			reason:     "cleanup",
			setupItems: func(m *lineitem_repo.MockQuerier, sm *state_machine.MockStateMachine) {
				m.EXPECT().
					GetLineItem(gomock.Any(), itemID).
					Return(lineitems.LineItem{}, pgx.ErrNoRows)
			},
			expectedError: "line item not found",
		},
		{
			name:       "line_item_on_other_bill",
			billStatus: model.BillStatusPending,
			reason:     "cleanup",
			setupItems: func(m *lineitem_repo.MockQuerier, sm *state_machine.MockStateMachine) {
				m.EXPECT().
					GetLineItem(gomock.Any(), itemID).
					Return(lineitems.LineItem{ID: itemID, BillID: uuid.New()}, nil)
			},
			expectedError: "line item not found on this bill",
		},
		{
			name:       "already_voided",
			billStatus: model.BillStatusPending,
			reason:     "cleanup",
			setupItems: func(m *lineitem_repo.MockQuerier, sm *state_machine.MockStateMachine) {
				m.EXPECT().
					GetLineItem(gomock.Any(), itemID).
					Return(lineitems.LineItem{ID: itemID, BillID: billID, Voided: true}, nil)
			},
			expectedError: "line item is already deleted",
		},
		{
			name:          "posted_bill_rejected",
			billStatus:    model.BillStatusPosted,
			reason:        "too late",
			expectedError: "bill is posted",
		},
		{
			name:          "paid_bill_rejected",
			billStatus:    model.BillStatusPaid,
			reason:        "too late",
			expectedError: "bill is paid",
		},
		{
			name:          "unrecognized_status_rejected",
			billStatus:    "CANCELLED",
			reason:        "too late",
			expectedError: "not in a valid state",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSM := state_machine.NewMockStateMachine(ctrl)
			mockItems := lineitem_repo.NewMockQuerier(ctrl)

			lockPassthrough(mockSM, billID, tc.billStatus)
			if tc.setupItems != nil {
				mockSM.EXPECT().GetTxLineItemRepo().Return(mockItems).AnyTimes()
				tc.setupItems(mockItems, mockSM)
			} else if tc.billStatus == model.BillStatusPending {
				mockSM.EXPECT().GetTxLineItemRepo().Return(mockItems).AnyTimes()
			}

			business := &business{stateMachine: mockSM}
			err := business.VoidLineItem(context.Background(), billID, itemID, tc.reason)

			if tc.expectedError == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			}
		})
	}
}

func TestVoidLineItem_EmptyReasonRejectedBeforeLocking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No ExecuteWithLock expectation: validation fails before any locking.
	mockSM := state_machine.NewMockStateMachine(ctrl)
	business := &business{stateMachine: mockSM}

	for _, reason := range []string{"", "   ", "\t\n"} {
		err := business.VoidLineItem(context.Background(), uuid.New(), uuid.New(), reason)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "a deletion reason is required")
	}
}
