package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/backend"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/logger"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/metrics"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"
)

type assignmentCreatorBackend interface {
	assignmentFetcher

	CreateAssignment(ctx context.Context, orderID string) (*models.Assignment, error)
}

type orderSource interface {
	Order() models.Order
}

// AssignmentCreator lazily asks the backend to assign a delivery partner once the
// order is paid or confirmed. Failures are retried on the next tick, which is also
// how partner scarcity is absorbed.
type AssignmentCreator struct {
	orderID    string
	backend    assignmentCreatorBackend
	dispatcher jobDispatcher
	cell       *AssignmentCell
	orders     orderSource
	interval   time.Duration
	onChange   func(ctx context.Context)

	// inFlight keeps a slow create call from overlapping with the next tick.
	inFlight *atomic.Bool
}

func NewAssignmentCreator(
	orderID string,
	backend assignmentCreatorBackend,
	dispatcher jobDispatcher,
	cell *AssignmentCell,
	orders orderSource,
	interval time.Duration,
	onChange func(ctx context.Context),
) *AssignmentCreator {
	return &AssignmentCreator{
		orderID:    orderID,
		backend:    backend,
		dispatcher: dispatcher,
		cell:       cell,
		orders:     orders,
		interval:   interval,
		onChange:   onChange,
		inFlight:   atomic.NewBool(false),
	}
}

// Run attempts a creation every interval, the first one after a full interval.
// It returns when ctx is done or the assignment reached a terminal status.
func (c *AssignmentCreator) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if c.cell.IsTerminal() {
				return nil
			}

			c.dispatch(ctx)
		}
	}
}

func (c *AssignmentCreator) dispatch(ctx context.Context) {
	err := c.dispatcher.Enqueue(func(context.Context) {
		if ctx.Err() != nil {
			return
		}

		c.Attempt(ctx)
	})

	if err != nil {
		logger.Log.Warn("assignment creation attempt skipped", zap.String("orderID", c.orderID), zap.Error(err))
	}
}

// Attempt creates the assignment if none is held and the order allows it.
// It reports whether the backend was asked to create one.
func (c *AssignmentCreator) Attempt(ctx context.Context) bool {
	if c.cell.Held() {
		return false
	}

	if !c.orders.Order().CanRequestAssignment() {
		metrics.AssignmentCreations.WithLabelValues(metrics.CreateSkipped).Inc()
		logger.Log.Debug("order isn't ready for an assignment", zap.String("orderID", c.orderID))
		return false
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		return false
	}
	defer c.inFlight.Store(false)

	// A call finishing between the first check and the swap may have stored one.
	if c.cell.Held() {
		return false
	}

	assignment, err := c.backend.CreateAssignment(ctx, c.orderID)

	if err == nil {
		metrics.AssignmentCreations.WithLabelValues(metrics.CreateCreated).Inc()
		logger.Log.Info("assignment created", zap.String("orderID", c.orderID))
		c.adopt(ctx, assignment)
		return true
	}

	if ctx.Err() != nil {
		return true
	}

	if errors.Is(err, backend.ErrAlreadyAssigned) {
		metrics.AssignmentCreations.WithLabelValues(metrics.CreateConflict).Inc()
		logger.Log.Info("order is already assigned, reconciling", zap.String("orderID", c.orderID))
		c.reconcile(ctx)
		return true
	}

	metrics.AssignmentCreations.WithLabelValues(metrics.CreateFailed).Inc()

	var rateLimitErr *backend.RateLimitError
	if errors.As(err, &rateLimitErr) {
		c.dispatcher.PauseAndResume(rateLimitErr.RetryAfter)
	}

	logger.Log.Info("assignment wasn't created, will retry",
		zap.String("orderID", c.orderID),
		zap.Duration("retryIn", c.interval),
		zap.Error(err),
	)

	return true
}

func (c *AssignmentCreator) reconcile(ctx context.Context) {
	assignment, err := c.backend.GetAssignmentByOrder(ctx, c.orderID)
	if err != nil {
		logger.Log.Warn("failed to fetch assignment after conflict", zap.String("orderID", c.orderID), zap.Error(err))
		return
	}

	if assignment == nil {
		logger.Log.Info("no assignment found after conflict", zap.String("orderID", c.orderID))
		return
	}

	c.adopt(ctx, assignment)
}

func (c *AssignmentCreator) adopt(ctx context.Context, assignment *models.Assignment) {
	if c.cell.Store(assignment) && c.onChange != nil {
		c.onChange(ctx)
	}
}
