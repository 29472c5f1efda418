package invoice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/billing/domain"
	"encore.app/billing/mocks/store/bill_repo"
	"encore.app/billing/store/bills"
)

func TestOverallPaymentStatus(t *testing.T) {
	patientID := uuid.New()

	testCases := []struct {
		name           string
		billStatuses   []string
		expectedStatus domain.OverallPaymentStatus
		expectedOK     bool
	}{
		{
			name:       "no_bills",
			expectedOK: false,
		},
		{
			name:           "all_paid",
			billStatuses:   []string{"PAID", "PAID"},
			expectedStatus: domain.OverallStatusPaid,
			expectedOK:     true,
		},
		{
			name:           "posted_dominates",
			billStatuses:   []string{"PAID", "POSTED", "PENDING"},
			expectedStatus: domain.OverallStatusPartiallyPaid,
			expectedOK:     true,
		},
		{
			name:           "only_pending",
			billStatuses:   []string{"PENDING"},
			expectedStatus: domain.OverallStatusPending,
			expectedOK:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dbBills := make([]bills.Bill, len(tc.billStatuses))
			for i, s := range tc.billStatuses {
				dbBills[i] = bills.Bill{ID: uuid.New(), PatientID: patientID, Status: s}
			}

			mockRepo := bill_repo.NewMockQuerier(ctrl)
			mockRepo.EXPECT().GetBillsByPatient(gomock.Any(), patientID).Return(dbBills, nil)

			business := &business{billRepo: mockRepo}
			status, ok, err := business.OverallPaymentStatus(context.Background(), patientID)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expectedStatus, status)
		})
	}
}

func TestOverallPaymentStatus_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bill_repo.NewMockQuerier(ctrl)
	mockRepo.EXPECT().GetBillsByPatient(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	business := &business{billRepo: mockRepo}
	_, ok, err := business.OverallPaymentStatus(context.Background(), uuid.New())

	assert.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "failed to get bills")
}
