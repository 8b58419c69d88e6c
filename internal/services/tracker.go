package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/backend"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/logger"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/metrics"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrSessionNotFound     = errors.New("tracking session not found")
	ErrTrackerClosed       = errors.New("tracker is shut down")
)

type sessionKey struct {
	subject string
	orderID string
}

// TrackerService manages the tracking sessions of all viewers. A session whose
// viewer went away is stopped after the configured idle timeout.
type TrackerService struct {
	ctx        context.Context
	backend    models.DeliveryBackend
	dispatcher jobDispatcher
	presenter  models.Presenter
	config     SessionConfig

	mu       sync.Mutex
	sessions map[sessionKey]*TrackingSession
	closed   bool
}

var _ models.TrackingService = (*TrackerService)(nil)

// NewTrackerService creates the manager. Sessions live within ctx, not within the
// request that started them.
func NewTrackerService(
	ctx context.Context,
	backend models.DeliveryBackend,
	dispatcher jobDispatcher,
	presenter models.Presenter,
	config SessionConfig,
) *TrackerService {
	return &TrackerService{
		ctx:        ctx,
		backend:    backend,
		dispatcher: dispatcher,
		presenter:  presenter,
		config:     config.withDefaults(),
		sessions:   make(map[sessionKey]*TrackingSession),
	}
}

// StartTracking fetches the order and starts a session for it. Orders that can't
// be fetched or aren't paid yet get no session at all. Calling it again for a
// tracked order refreshes the session's order.
func (t *TrackerService) StartTracking(ctx context.Context, viewer models.Viewer, orderID string) (models.TrackingSnapshot, bool, error) {
	order, err := t.backend.GetOrder(backend.WithToken(ctx, viewer.Token), orderID)
	if err != nil {
		if errors.Is(err, backend.ErrOrderNotFound) {
			return models.TrackingSnapshot{}, false, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}

		return models.TrackingSnapshot{}, false, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}

	if order == nil {
		return models.TrackingSnapshot{}, false, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}

	if order.ID == "" {
		order.ID = models.ID(orderID)
	}

	if !order.IsTrackable() {
		return models.TrackingSnapshot{}, false, fmt.Errorf("%w: order %s", ErrPaymentNotCompleted, orderID)
	}

	key := sessionKey{subject: viewer.Subject, orderID: orderID}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return models.TrackingSnapshot{}, false, ErrTrackerClosed
	}

	if session, ok := t.sessions[key]; ok {
		session.UpdateOrder(*order, viewer.Token)
		return session.Snapshot(), false, nil
	}

	session := newTrackingSession(
		t.ctx,
		*order,
		viewer.Token,
		t.backend,
		t.dispatcher,
		t.presenter,
		t.config,
	)
	session.Start()

	t.sessions[key] = session
	metrics.ActiveSessions.Inc()

	t.watchIdle(key, session, t.config.IdleTimeout)

	return session.Snapshot(), true, nil
}

func (t *TrackerService) GetSnapshot(viewer models.Viewer, orderID string) (models.TrackingSnapshot, error) {
	session, err := t.session(viewer, orderID)
	if err != nil {
		return models.TrackingSnapshot{}, err
	}

	session.Touch()

	return session.Snapshot(), nil
}

func (t *TrackerService) Subscribe(viewer models.Viewer, orderID string) (<-chan models.TrackingEvent, func(), error) {
	session, err := t.session(viewer, orderID)
	if err != nil {
		return nil, nil, err
	}

	events, unsubscribe := session.Subscribe()

	return events, unsubscribe, nil
}

func (t *TrackerService) StopTracking(viewer models.Viewer, orderID string) error {
	key := sessionKey{subject: viewer.Subject, orderID: orderID}

	t.mu.Lock()
	session, ok := t.sessions[key]
	if ok {
		delete(t.sessions, key)
	}
	t.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	metrics.ActiveSessions.Dec()

	return session.Stop()
}

// Shutdown stops every session. No new sessions can be started afterwards.
func (t *TrackerService) Shutdown() error {
	t.mu.Lock()
	t.closed = true
	sessions := t.sessions
	t.sessions = make(map[sessionKey]*TrackingSession)
	t.mu.Unlock()

	var err error

	for _, session := range sessions {
		metrics.ActiveSessions.Dec()
		err = multierr.Append(err, session.Stop())
	}

	logger.Log.Info("tracker shut down", zap.Int("sessions", len(sessions)))

	return err
}

func (t *TrackerService) watchIdle(key sessionKey, session *TrackingSession, delay time.Duration) {
	t.dispatcher.ScheduleJob(func(context.Context) {
		if session.Stopped() {
			return
		}

		idle := session.IdleFor(time.Now())
		if idle < t.config.IdleTimeout {
			t.watchIdle(key, session, t.config.IdleTimeout-idle)
			return
		}

		t.expire(key, session)
	}, delay)
}

func (t *TrackerService) expire(key sessionKey, session *TrackingSession) {
	t.mu.Lock()
	current, ok := t.sessions[key]
	if ok && current == session {
		delete(t.sessions, key)
	}
	t.mu.Unlock()

	if !ok || current != session {
		return
	}

	metrics.ActiveSessions.Dec()
	logger.Log.Info("tracking session expired", zap.String("orderID", key.orderID), zap.String("sessionID", session.ID()))

	if err := session.Stop(); err != nil {
		logger.Log.Warn("expired session didn't stop cleanly", zap.String("sessionID", session.ID()), zap.Error(err))
	}
}

func (t *TrackerService) session(viewer models.Viewer, orderID string) (*TrackingSession, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	session, ok := t.sessions[sessionKey{subject: viewer.Subject, orderID: orderID}]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return session, nil
}
