package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/logger"
)

var (
	ErrJobQueueIsFull = errors.New("job queue is full")
	ErrJobQueueClosed = errors.New("job queue is closed")
)

// Job is a unit of work executed by the queue workers.
type Job func(ctx context.Context)

// jobDispatcher is the part of the queue the tracking loops depend on.
type jobDispatcher interface {
	Enqueue(job Job) error

	ScheduleJob(job Job, delay time.Duration)

	PauseAndResume(delay time.Duration)
}

// JobQueueService runs jobs on a fixed set of workers. Timer ticks hand their
// network calls to it so that a slow call never holds up the next tick.
type JobQueueService struct {
	jobs chan Job
	wg   sync.WaitGroup

	// closeMu guards closing and the jobs channel close.
	closeMu sync.RWMutex
	closing bool

	// pauseMu guards paused and resume.
	pauseMu sync.Mutex
	paused  bool
	resume  chan struct{}
}

// NewJobQueueService creates a queue holding up to capacity pending jobs and starts
// the workers. Workers exit when ctx is cancelled or the queue is shut down.
func NewJobQueueService(ctx context.Context, capacity, workers int) *JobQueueService {
	service := &JobQueueService{
		jobs:   make(chan Job, capacity),
		resume: make(chan struct{}),
	}
	service.start(ctx, workers)

	return service
}

func (jqs *JobQueueService) start(ctx context.Context, workers int) {
	for i := 0; i < workers; i++ {
		jqs.wg.Add(1)

		go func(workerID int) {
			defer jqs.wg.Done()

			for {
				select {
				case job, ok := <-jqs.jobs:
					if !ok {
						return
					}

					if !jqs.waitIfPaused(ctx) {
						return
					}

					job(ctx)
				case <-ctx.Done():
					logger.Log.Debug("job queue worker stopped", zap.Int("workerID", workerID))
					return
				}
			}
		}(i + 1)
	}
}

func (jqs *JobQueueService) waitIfPaused(ctx context.Context) bool {
	jqs.pauseMu.Lock()
	if !jqs.paused {
		jqs.pauseMu.Unlock()
		return true
	}
	resume := jqs.resume
	jqs.pauseMu.Unlock()

	select {
	case <-resume:
		return true
	case <-ctx.Done():
		return false
	}
}

// Enqueue adds a job without blocking.
func (jqs *JobQueueService) Enqueue(job Job) error {
	jqs.closeMu.RLock()
	defer jqs.closeMu.RUnlock()

	if jqs.closing {
		return ErrJobQueueClosed
	}

	select {
	case jqs.jobs <- job:
		return nil
	default:
		return ErrJobQueueIsFull
	}
}

// ScheduleJob enqueues the job after delay. A full queue defers it by another delay.
func (jqs *JobQueueService) ScheduleJob(job Job, delay time.Duration) {
	time.AfterFunc(delay, func() {
		err := jqs.Enqueue(job)

		switch {
		case errors.Is(err, ErrJobQueueIsFull):
			logger.Log.Debug("job queue is full, rescheduling job", zap.Duration("delay", delay))
			jqs.ScheduleJob(job, delay)
		case err != nil:
			logger.Log.Warn("failed to schedule job", zap.Error(err))
		}
	})
}

func (jqs *JobQueueService) Pause() {
	jqs.pauseMu.Lock()
	defer jqs.pauseMu.Unlock()

	jqs.paused = true
}

func (jqs *JobQueueService) Resume() {
	jqs.pauseMu.Lock()
	defer jqs.pauseMu.Unlock()

	if !jqs.paused {
		return
	}

	jqs.paused = false
	close(jqs.resume)
	jqs.resume = make(chan struct{})
}

// PauseAndResume holds the workers back for delay, e.g. after the backend asked us to slow down.
func (jqs *JobQueueService) PauseAndResume(delay time.Duration) {
	jqs.Pause()
	time.AfterFunc(delay, func() {
		jqs.Resume()
	})
}

// Shutdown stops accepting jobs and waits for the workers to drain the queue.
func (jqs *JobQueueService) Shutdown() {
	jqs.closeMu.Lock()
	if jqs.closing {
		jqs.closeMu.Unlock()
		return
	}
	jqs.closing = true
	close(jqs.jobs)
	jqs.closeMu.Unlock()

	jqs.Resume()
	jqs.wg.Wait()
}
