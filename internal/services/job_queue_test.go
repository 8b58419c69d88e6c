package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobQueueServiceRunsJobs(t *testing.T) {
	queue := NewJobQueueService(context.Background(), 10, 2)

	var done atomic.Int32
	for i := 0; i < 5; i++ {
		require.NoError(t, queue.Enqueue(func(context.Context) {
			done.Add(1)
		}))
	}

	queue.Shutdown()

	assert.Equal(t, int32(5), done.Load())
}

func TestJobQueueServiceRejectsJobs(t *testing.T) {
	queue := NewJobQueueService(context.Background(), 1, 0)

	require.NoError(t, queue.Enqueue(func(context.Context) {}))
	assert.ErrorIs(t, queue.Enqueue(func(context.Context) {}), ErrJobQueueIsFull)

	queue.Shutdown()
	queue.Shutdown()

	assert.ErrorIs(t, queue.Enqueue(func(context.Context) {}), ErrJobQueueClosed)
}

func TestJobQueueServicePause(t *testing.T) {
	queue := NewJobQueueService(context.Background(), 10, 1)
	defer queue.Shutdown()

	var done atomic.Bool

	queue.Pause()
	require.NoError(t, queue.Enqueue(func(context.Context) {
		done.Store(true)
	}))

	assert.Never(t, done.Load, 50*time.Millisecond, 5*time.Millisecond)

	queue.Resume()

	assert.Eventually(t, done.Load, time.Second, 5*time.Millisecond)
}

func TestJobQueueServicePauseAndResume(t *testing.T) {
	queue := NewJobQueueService(context.Background(), 10, 1)
	defer queue.Shutdown()

	var done atomic.Bool

	queue.PauseAndResume(30 * time.Millisecond)
	require.NoError(t, queue.Enqueue(func(context.Context) {
		done.Store(true)
	}))

	assert.Eventually(t, done.Load, time.Second, 5*time.Millisecond)
}

func TestJobQueueServiceScheduleJob(t *testing.T) {
	queue := NewJobQueueService(context.Background(), 10, 1)
	defer queue.Shutdown()

	var done atomic.Bool

	queue.ScheduleJob(func(context.Context) {
		done.Store(true)
	}, 10*time.Millisecond)

	assert.Eventually(t, done.Load, time.Second, 5*time.Millisecond)
}

func TestJobQueueServiceScheduleJobWaitsForRoom(t *testing.T) {
	queue := NewJobQueueService(context.Background(), 1, 1)
	defer queue.Shutdown()

	queue.Pause()

	require.NoError(t, queue.Enqueue(func(context.Context) {}))
	require.Eventually(t, func() bool {
		return len(queue.jobs) == 0
	}, time.Second, time.Millisecond)
	require.NoError(t, queue.Enqueue(func(context.Context) {}))
	require.ErrorIs(t, queue.Enqueue(func(context.Context) {}), ErrJobQueueIsFull)

	var done atomic.Bool

	queue.ScheduleJob(func(context.Context) {
		done.Store(true)
	}, 5*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	assert.False(t, done.Load())

	queue.Resume()

	assert.Eventually(t, done.Load, time.Second, 5*time.Millisecond)
}

func TestJobQueueServiceStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	queue := NewJobQueueService(ctx, 10, 2)

	queue.Pause()
	require.NoError(t, queue.Enqueue(func(context.Context) {}))

	cancel()

	stopped := make(chan struct{})
	go func() {
		queue.Shutdown()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("workers didn't stop with their context")
	}
}
