package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/backend"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/logger"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/metrics"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"
)

type assignmentFetcher interface {
	GetAssignmentByOrder(ctx context.Context, orderID string) (*models.Assignment, error)
}

// AssignmentPoller keeps the assignment cell in line with the backend while an
// order is tracked.
type AssignmentPoller struct {
	orderID    string
	backend    assignmentFetcher
	dispatcher jobDispatcher
	cell       *AssignmentCell
	interval   time.Duration
	onChange   func(ctx context.Context)

	stopOnce sync.Once
	stopped  chan struct{}
}

func NewAssignmentPoller(
	orderID string,
	backend assignmentFetcher,
	dispatcher jobDispatcher,
	cell *AssignmentCell,
	interval time.Duration,
	onChange func(ctx context.Context),
) *AssignmentPoller {
	return &AssignmentPoller{
		orderID:    orderID,
		backend:    backend,
		dispatcher: dispatcher,
		cell:       cell,
		interval:   interval,
		onChange:   onChange,
		stopped:    make(chan struct{}),
	}
}

// Run polls right away and then every interval until ctx is done or a terminal
// assignment has been applied.
func (p *AssignmentPoller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if p.cell.IsTerminal() {
			p.stop()
			return nil
		}

		p.dispatch(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-p.stopped:
			return nil
		case <-ticker.C:
		}
	}
}

// Polling reports whether the poller still schedules fetches.
func (p *AssignmentPoller) Polling() bool {
	select {
	case <-p.stopped:
		return false
	default:
		return true
	}
}

func (p *AssignmentPoller) dispatch(ctx context.Context) {
	err := p.dispatcher.Enqueue(func(context.Context) {
		if ctx.Err() != nil {
			return
		}

		p.Poll(ctx)
	})

	if err != nil {
		logger.Log.Warn("assignment poll skipped", zap.String("orderID", p.orderID), zap.Error(err))
	}
}

// Poll fetches the assignment once and applies it. Errors are logged and dropped,
// the next tick tries again.
func (p *AssignmentPoller) Poll(ctx context.Context) {
	assignment, err := p.backend.GetAssignmentByOrder(ctx, p.orderID)

	if err != nil {
		if ctx.Err() != nil {
			return
		}

		metrics.AssignmentPolls.WithLabelValues(metrics.PollError).Inc()

		var rateLimitErr *backend.RateLimitError
		if errors.As(err, &rateLimitErr) {
			p.dispatcher.PauseAndResume(rateLimitErr.RetryAfter)
		}

		logger.Log.Warn("failed to fetch assignment", zap.String("orderID", p.orderID), zap.Error(err))
		return
	}

	if assignment == nil {
		metrics.AssignmentPolls.WithLabelValues(metrics.PollEmpty).Inc()
		return
	}

	metrics.AssignmentPolls.WithLabelValues(metrics.PollFound).Inc()

	if p.cell.Store(assignment) {
		logger.Log.Info("assignment updated",
			zap.String("orderID", p.orderID),
			zap.String("status", string(assignment.Status)),
		)

		if p.onChange != nil {
			p.onChange(ctx)
		}
	}

	if p.cell.IsTerminal() {
		p.stop()
	}
}

func (p *AssignmentPoller) stop() {
	p.stopOnce.Do(func() {
		close(p.stopped)
		logger.Log.Info("assignment polling stopped", zap.String("orderID", p.orderID))
	})
}
