package services

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/backend"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/logger"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"
)

const (
	DefaultPollInterval            = 5 * time.Second
	DefaultAssignmentRetryInterval = 15 * time.Second
	DefaultIdleTimeout             = 2 * time.Minute
)

const subscriberBufferSize = 16

type SessionConfig struct {
	PollInterval            time.Duration
	AssignmentRetryInterval time.Duration

	// IdleTimeout ends a session nobody subscribed to or asked about for that long.
	IdleTimeout time.Duration
}

func (c SessionConfig) withDefaults() SessionConfig {
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}

	if c.AssignmentRetryInterval <= 0 {
		c.AssignmentRetryInterval = DefaultAssignmentRetryInterval
	}

	if c.IdleTimeout <= 0 {
		c.IdleTimeout = DefaultIdleTimeout
	}

	return c
}

// TrackingSession tracks one order for one viewer. It owns the assignment cell and
// the two loops writing to it, and lives until Stop is called.
// Backend calls carry the viewer's latest token.
type TrackingSession struct {
	id         string
	orderID    string
	dispatcher jobDispatcher
	presenter  models.Presenter

	token *atomic.String

	mu        sync.RWMutex
	order     models.Order
	updatedAt time.Time
	lastSeen  time.Time

	cell     *AssignmentCell
	poller   *AssignmentPoller
	creator  *AssignmentCreator
	notifier *DeliveredNotifier

	// refreshMu keeps snapshots reaching subscribers in the order they were taken.
	refreshMu sync.Mutex

	subsMu      sync.Mutex
	subscribers map[int]chan models.TrackingEvent
	nextSubID   int
	closed      bool

	ctx      context.Context
	cancel   context.CancelFunc
	group    *errgroup.Group
	stopOnce sync.Once
	stopErr  error
}

func newTrackingSession(
	ctx context.Context,
	order models.Order,
	token string,
	deliveryBackend models.DeliveryBackend,
	dispatcher jobDispatcher,
	presenter models.Presenter,
	config SessionConfig,
) *TrackingSession {
	config = config.withDefaults()
	orderID := order.ID.String()

	s := &TrackingSession{
		id:          uuid.NewString(),
		orderID:     orderID,
		dispatcher:  dispatcher,
		presenter:   presenter,
		token:       atomic.NewString(token),
		order:       order,
		updatedAt:   time.Now(),
		lastSeen:    time.Now(),
		cell:        NewAssignmentCell(),
		subscribers: make(map[int]chan models.TrackingEvent),
	}

	s.ctx, s.cancel = context.WithCancel(backend.WithTokenSource(ctx, s.token.Load))
	s.poller = NewAssignmentPoller(orderID, deliveryBackend, dispatcher, s.cell, config.PollInterval, s.refresh)
	s.creator = NewAssignmentCreator(orderID, deliveryBackend, dispatcher, s.cell, s, config.AssignmentRetryInterval, s.refresh)
	s.notifier = NewDeliveredNotifier(orderID, deliveryBackend, s)

	return s
}

func (s *TrackingSession) ID() string {
	return s.id
}

// Start launches the poller and the creator.
func (s *TrackingSession) Start() {
	group, ctx := errgroup.WithContext(s.ctx)
	s.group = group

	group.Go(func() error {
		return s.poller.Run(ctx)
	})

	group.Go(func() error {
		return s.creator.Run(ctx)
	})

	logger.Log.Info("tracking started", zap.String("orderID", s.orderID), zap.String("sessionID", s.id))

	s.dispatchRefresh()
}

// Stop cancels both loops and any call still in flight, then closes all subscriptions.
func (s *TrackingSession) Stop() error {
	s.stopOnce.Do(func() {
		s.cancel()

		if s.group != nil {
			s.stopErr = s.group.Wait()
		}

		s.subsMu.Lock()
		s.closed = true
		for id, ch := range s.subscribers {
			delete(s.subscribers, id)
			close(ch)
		}
		s.subsMu.Unlock()

		logger.Log.Info("tracking stopped", zap.String("orderID", s.orderID), zap.String("sessionID", s.id))
	})

	return s.stopErr
}

func (s *TrackingSession) Stopped() bool {
	return s.ctx.Err() != nil
}

// Touch marks the viewer as present.
func (s *TrackingSession) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = time.Now()
}

// IdleFor reports how long the session has gone without subscribers or touches.
func (s *TrackingSession) IdleFor(now time.Time) time.Duration {
	s.subsMu.Lock()
	subscribed := len(s.subscribers) > 0
	s.subsMu.Unlock()

	if subscribed {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return now.Sub(s.lastSeen)
}

func (s *TrackingSession) Order() models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.order
}

// UpdateOrder replaces the session's copy of the order and the viewer's token, e.g.
// after the viewer fetched the order again. The stage is re-evaluated when the order changed.
func (s *TrackingSession) UpdateOrder(order models.Order, token string) {
	if token != "" {
		s.token.Store(token)
	}

	s.mu.Lock()
	changed := !reflect.DeepEqual(s.order, order)
	s.order = order
	s.lastSeen = time.Now()
	s.mu.Unlock()

	if changed {
		s.dispatchRefresh()
	}
}

func (s *TrackingSession) Snapshot() models.TrackingSnapshot {
	order := s.Order()
	assignment := s.cell.Load()

	var assignmentStatus models.AssignmentStatus
	if assignment != nil {
		assignmentStatus = assignment.Status
	}

	s.mu.RLock()
	updatedAt := s.updatedAt
	s.mu.RUnlock()

	return models.TrackingSnapshot{
		SessionID:       s.id,
		OrderID:         s.orderID,
		OrderStatus:     order.Status(),
		PaymentStatus:   order.Payment(),
		Assignment:      assignment,
		Stage:           ResolveStage(order.Status(), assignmentStatus),
		AwaitingPartner: assignment == nil && !order.IsClosed(),
		Polling:         s.poller.Polling() && s.ctx.Err() == nil,
		Delivered:       s.notifier.Notified(),
		UpdatedAt:       models.Timestamp{Time: updatedAt},
	}
}

// Subscribe returns a channel of session events and a function ending the subscription.
// Slow subscribers miss events rather than holding up the session.
func (s *TrackingSession) Subscribe() (<-chan models.TrackingEvent, func()) {
	ch := make(chan models.TrackingEvent, subscriberBufferSize)
	s.Touch()

	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch

	return ch, func() {
		s.subsMu.Lock()
		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
		s.subsMu.Unlock()

		s.Touch()
	}
}

func (s *TrackingSession) PresentDelivered(ctx context.Context, snapshot models.TrackingSnapshot) {
	s.broadcast(models.TrackingEvent{Type: models.EventDelivered, Snapshot: snapshot})

	if s.presenter != nil {
		s.presenter.PresentDelivered(ctx, snapshot)
	}
}

func (s *TrackingSession) PromptRating(ctx context.Context, snapshot models.TrackingSnapshot, review models.ReviewStatus) {
	s.broadcast(models.TrackingEvent{Type: models.EventRatingPrompt, Snapshot: snapshot, Review: &review})

	if s.presenter != nil {
		s.presenter.PromptRating(ctx, snapshot, review)
	}
}

func (s *TrackingSession) dispatchRefresh() {
	err := s.dispatcher.Enqueue(func(context.Context) {
		if s.ctx.Err() != nil {
			return
		}

		s.refresh(s.ctx)
	})

	if err != nil {
		logger.Log.Warn("session refresh skipped", zap.String("sessionID", s.id), zap.Error(err))
	}
}

// refresh publishes the current snapshot and lets the notifier look at it.
func (s *TrackingSession) refresh(ctx context.Context) {
	s.refreshMu.Lock()
	s.mu.Lock()
	s.updatedAt = time.Now()
	s.mu.Unlock()

	snapshot := s.Snapshot()
	s.broadcast(models.TrackingEvent{Type: models.EventSnapshot, Snapshot: snapshot})
	s.refreshMu.Unlock()

	s.notifier.Observe(ctx, snapshot)
}

func (s *TrackingSession) broadcast(event models.TrackingEvent) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- event:
		default:
			logger.Log.Debug("subscriber is lagging, event dropped",
				zap.String("sessionID", s.id),
				zap.String("event", string(event.Type)),
			)
		}
	}
}
