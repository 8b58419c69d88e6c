package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/backend"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"
	mock_models "github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models/mocks"
)

func TestAssignmentPollerPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backendMock := mock_models.NewMockDeliveryBackend(ctrl)
	dispatcher := &inlineDispatcher{}
	cell := NewAssignmentCell()

	var changes atomic.Int32
	poller := NewAssignmentPoller("42", backendMock, dispatcher, cell, time.Hour, func(context.Context) {
		changes.Add(1)
	})

	ctx := context.Background()

	t.Run("Should keep waiting while there is no assignment", func(t *testing.T) {
		backendMock.EXPECT().GetAssignmentByOrder(gomock.Any(), "42").Return(nil, nil)

		poller.Poll(ctx)

		assert.False(t, cell.Held())
		assert.Equal(t, int32(0), changes.Load())
		assert.True(t, poller.Polling())
	})

	t.Run("Should swallow fetch errors", func(t *testing.T) {
		backendMock.EXPECT().GetAssignmentByOrder(gomock.Any(), "42").Return(nil, errors.New("connection reset"))

		poller.Poll(ctx)

		assert.False(t, cell.Held())
		assert.True(t, poller.Polling())
		assert.Empty(t, dispatcher.Pauses())
	})

	t.Run("Should back off when rate limited", func(t *testing.T) {
		backendMock.EXPECT().GetAssignmentByOrder(gomock.Any(), "42").Return(nil, &backend.RateLimitError{RetryAfter: 3 * time.Second})

		poller.Poll(ctx)

		assert.Equal(t, []time.Duration{3 * time.Second}, dispatcher.Pauses())
		assert.True(t, poller.Polling())
	})

	t.Run("Should apply fetched assignment", func(t *testing.T) {
		backendMock.EXPECT().GetAssignmentByOrder(gomock.Any(), "42").Return(assignmentWithStatus(models.AssignmentHeadingToPickup), nil)

		poller.Poll(ctx)

		assert.Equal(t, models.AssignmentHeadingToPickup, cell.Load().Status)
		assert.Equal(t, int32(1), changes.Load())
	})

	t.Run("Should ignore identical assignment", func(t *testing.T) {
		backendMock.EXPECT().GetAssignmentByOrder(gomock.Any(), "42").Return(assignmentWithStatus(models.AssignmentHeadingToPickup), nil)

		poller.Poll(ctx)

		assert.Equal(t, int32(1), changes.Load())
	})

	t.Run("Should stop after terminal assignment", func(t *testing.T) {
		backendMock.EXPECT().GetAssignmentByOrder(gomock.Any(), "42").Return(assignmentWithStatus(models.AssignmentCancelled), nil)

		poller.Poll(ctx)

		assert.Equal(t, models.AssignmentCancelled, cell.Load().Status)
		assert.Equal(t, int32(2), changes.Load())
		assert.False(t, poller.Polling())
	})
}

func TestAssignmentPollerRunStopsOnTerminalStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backendMock := mock_models.NewMockDeliveryBackend(ctrl)
	cell := NewAssignmentCell()

	gomock.InOrder(
		backendMock.EXPECT().GetAssignmentByOrder(gomock.Any(), "42").Return(nil, errors.New("bad gateway")),
		backendMock.EXPECT().GetAssignmentByOrder(gomock.Any(), "42").Return(assignmentWithStatus(models.AssignmentPickedUp), nil),
		backendMock.EXPECT().GetAssignmentByOrder(gomock.Any(), "42").Return(assignmentWithStatus(models.AssignmentDelivered), nil),
	)

	poller := NewAssignmentPoller("42", backendMock, &inlineDispatcher{}, cell, 5*time.Millisecond, nil)

	done := make(chan error, 1)
	go func() {
		done <- poller.Run(context.Background())
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("poller kept running after a terminal assignment")
	}

	assert.True(t, cell.IsTerminal())
	assert.False(t, poller.Polling())
}

func TestAssignmentPollerRunFetchesImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backendMock := mock_models.NewMockDeliveryBackend(ctrl)
	fetched := make(chan struct{}, 1)

	backendMock.EXPECT().GetAssignmentByOrder(gomock.Any(), "42").DoAndReturn(
		func(context.Context, string) (*models.Assignment, error) {
			select {
			case fetched <- struct{}{}:
			default:
			}
			return nil, nil
		},
	).AnyTimes()

	poller := NewAssignmentPoller("42", backendMock, &inlineDispatcher{}, NewAssignmentCell(), time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- poller.Run(ctx)
	}()

	select {
	case <-fetched:
	case <-time.After(time.Second):
		t.Fatal("first fetch didn't happen right away")
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("poller ignored cancellation")
	}
}

func TestAssignmentPollerRunWithTerminalCell(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backendMock := mock_models.NewMockDeliveryBackend(ctrl)
	cell := NewAssignmentCell()
	cell.Store(assignmentWithStatus(models.AssignmentFailed))

	poller := NewAssignmentPoller("42", backendMock, &inlineDispatcher{}, cell, time.Millisecond, nil)

	require.NoError(t, poller.Run(context.Background()))
	assert.False(t, poller.Polling())
}
