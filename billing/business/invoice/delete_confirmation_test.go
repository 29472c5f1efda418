package invoice

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

type fakeDeleter struct {
	mu      sync.Mutex
	calls   int
	lastID  uuid.UUID
	reason  string
	err     error
	started chan struct{}
	release chan struct{}
}

func (d *fakeDeleter) DeleteLineItem(ctx context.Context, itemID uuid.UUID, reason string) error {
	d.mu.Lock()
	d.calls++
	d.lastID = itemID
	d.reason = reason
	started := d.started
	release := d.release
	d.mu.Unlock()

	if started != nil {
		close(started)
	}
	if release != nil {
		<-release
	}
	return d.err
}

func (d *fakeDeleter) callCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *fakeNotifier) Success(title, subtitle string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, title+": "+subtitle)
}

func (n *fakeNotifier) Error(title, subtitle string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, title+": "+subtitle)
}

func pendingBill() model.Bill {
	return model.Bill{ID: uuid.New(), Status: model.BillStatusPending}
}

func TestDeleteConfirmation_SuccessfulDelete(t *testing.T) {
	item := model.LineItem{ID: uuid.New()}
	deleter := &fakeDeleter{}
	notifier := &fakeNotifier{}
	mutations := 0

	c := NewDeleteConfirmation(pendingBill(), item, deleter, notifier, func() { mutations++ })

	require.NoError(t, c.Open())
	assert.True(t, c.IsOpen())
	assert.False(t, c.CanConfirm())

	c.SetReason("entered in error")
	assert.True(t, c.CanConfirm())

	require.NoError(t, c.Confirm(context.Background()))

	assert.Equal(t, 1, deleter.callCount())
	assert.Equal(t, item.ID, deleter.lastID)
	assert.Equal(t, "entered in error", deleter.reason)
	assert.Equal(t, 1, mutations)
	assert.Equal(t, []string{"Line item deleted: Bill line item deleted successfully"}, notifier.successes)
	assert.Empty(t, notifier.failures)
	assert.False(t, c.IsOpen())
}

func TestDeleteConfirmation_OpenRejectedOnLockedBill(t *testing.T) {
	for _, status := range []model.BillStatus{model.BillStatusPosted, model.BillStatusPaid} {
		bill := model.Bill{ID: uuid.New(), Status: status}
		c := NewDeleteConfirmation(bill, model.LineItem{}, &fakeDeleter{}, &fakeNotifier{}, nil)

		err := c.Open()

		require.Error(t, err)
		assert.Equal(t, errs.FailedPrecondition, err.(*errs.Error).Code)
		assert.False(t, c.IsOpen())
	}
}

func TestDeleteConfirmation_ReasonValidation(t *testing.T) {
	deleter := &fakeDeleter{}
	c := NewDeleteConfirmation(pendingBill(), model.LineItem{}, deleter, &fakeNotifier{}, nil)
	require.NoError(t, c.Open())

	testCases := []struct {
		name   string
		reason string
	}{
		{name: "empty_reason", reason: ""},
		{name: "whitespace_only_reason", reason: "   \t  "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c.SetReason(tc.reason)

			assert.False(t, c.CanConfirm())

			err := c.Confirm(context.Background())
			require.Error(t, err)
			assert.Equal(t, errs.InvalidArgument, err.(*errs.Error).Code)
			assert.Equal(t, 0, deleter.callCount())
			assert.True(t, c.IsOpen())
		})
	}
}

func TestDeleteConfirmation_ReasonIsTrimmedBeforeDelete(t *testing.T) {
	deleter := &fakeDeleter{}
	c := NewDeleteConfirmation(pendingBill(), model.LineItem{}, deleter, &fakeNotifier{}, nil)
	require.NoError(t, c.Open())

	c.SetReason("  duplicate entry  ")
	require.NoError(t, c.Confirm(context.Background()))

	assert.Equal(t, "duplicate entry", deleter.reason)
}

func TestDeleteConfirmation_FailureStaysOpenForRetry(t *testing.T) {
	deleter := &fakeDeleter{err: &errs.Error{Code: errs.Internal, Message: "bill is locked by another user"}}
	notifier := &fakeNotifier{}
	mutations := 0

	c := NewDeleteConfirmation(pendingBill(), model.LineItem{ID: uuid.New()}, deleter, notifier, func() { mutations++ })
	require.NoError(t, c.Open())
	c.SetReason("wrong item")

	err := c.Confirm(context.Background())

	require.Error(t, err)
	assert.True(t, c.IsOpen())
	assert.False(t, c.InFlight())
	assert.Equal(t, 0, mutations)
	// The server detail surfaces in the notification, not a generic message.
	require.Len(t, notifier.failures, 1)
	assert.Equal(t, "Failed to delete line item: bill is locked by another user", notifier.failures[0])

	// Retry after the failure succeeds.
	deleter.err = nil
	require.NoError(t, c.Confirm(context.Background()))
	assert.Equal(t, 2, deleter.callCount())
	assert.Equal(t, 1, mutations)
	assert.False(t, c.IsOpen())
}

func TestDeleteConfirmation_PlainErrorMessageSurfaces(t *testing.T) {
	deleter := &fakeDeleter{err: errors.New("connection refused")}
	notifier := &fakeNotifier{}

	c := NewDeleteConfirmation(pendingBill(), model.LineItem{}, deleter, notifier, nil)
	require.NoError(t, c.Open())
	c.SetReason("cleanup")

	require.Error(t, c.Confirm(context.Background()))

	require.Len(t, notifier.failures, 1)
	assert.Equal(t, "Failed to delete line item: connection refused", notifier.failures[0])
}

func TestDeleteConfirmation_ConcurrentConfirmAborts(t *testing.T) {
	deleter := &fakeDeleter{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	c := NewDeleteConfirmation(pendingBill(), model.LineItem{}, deleter, &fakeNotifier{}, nil)
	require.NoError(t, c.Open())
	c.SetReason("dup")

	firstDone := make(chan error, 1)
	go func() { firstDone <- c.Confirm(context.Background()) }()

	<-deleter.started
	assert.True(t, c.InFlight())
	assert.False(t, c.CanConfirm())

	err := c.Confirm(context.Background())
	require.Error(t, err)
	assert.Equal(t, errs.Aborted, err.(*errs.Error).Code)

	close(deleter.release)
	require.NoError(t, <-firstDone)
	assert.Equal(t, 1, deleter.callCount())
}

func TestDeleteConfirmation_CancelDiscardsInFlightResult(t *testing.T) {
	deleter := &fakeDeleter{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	notifier := &fakeNotifier{}
	mutations := 0

	c := NewDeleteConfirmation(pendingBill(), model.LineItem{}, deleter, notifier, func() { mutations++ })
	require.NoError(t, c.Open())
	c.SetReason("late cancel")

	done := make(chan error, 1)
	go func() { done <- c.Confirm(context.Background()) }()

	<-deleter.started
	c.Cancel()
	close(deleter.release)

	require.NoError(t, <-done)
	assert.Equal(t, 0, mutations)
	assert.Empty(t, notifier.successes)
	assert.Empty(t, notifier.failures)
	assert.False(t, c.IsOpen())
}

func TestDeleteConfirmation_ContextCancelDiscardsResult(t *testing.T) {
	deleter := &fakeDeleter{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	notifier := &fakeNotifier{}
	mutations := 0

	c := NewDeleteConfirmation(pendingBill(), model.LineItem{}, deleter, notifier, func() { mutations++ })
	require.NoError(t, c.Open())
	c.SetReason("abandoned")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Confirm(ctx) }()

	<-deleter.started
	cancel()
	close(deleter.release)

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, mutations)
	assert.Empty(t, notifier.successes)
	assert.False(t, c.InFlight())
}

func TestDeleteConfirmation_ConfirmWithoutOpen(t *testing.T) {
	c := NewDeleteConfirmation(pendingBill(), model.LineItem{}, &fakeDeleter{}, &fakeNotifier{}, nil)
	c.SetReason("never opened")

	err := c.Confirm(context.Background())

	require.Error(t, err)
	assert.Equal(t, errs.FailedPrecondition, err.(*errs.Error).Code)
}

func TestDeleteConfirmation_ReopenClearsStaleReason(t *testing.T) {
	c := NewDeleteConfirmation(pendingBill(), model.LineItem{}, &fakeDeleter{}, &fakeNotifier{}, nil)

	require.NoError(t, c.Open())
	c.SetReason("first attempt")
	c.Cancel()

	require.NoError(t, c.Open())
	assert.False(t, c.CanConfirm())
}
