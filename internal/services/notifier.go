package services

import (
	"context"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/logger"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/metrics"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"
)

type reviewStatusFetcher interface {
	GetReviewStatus(ctx context.Context, orderID string) (*models.ReviewStatus, error)
}

// DeliveredNotifier announces the delivery of an order once per session.
type DeliveredNotifier struct {
	orderID   string
	backend   reviewStatusFetcher
	presenter models.Presenter
	notified  *atomic.Bool
}

func NewDeliveredNotifier(orderID string, backend reviewStatusFetcher, presenter models.Presenter) *DeliveredNotifier {
	return &DeliveredNotifier{
		orderID:   orderID,
		backend:   backend,
		presenter: presenter,
		notified:  atomic.NewBool(false),
	}
}

// Observe presents the delivery the first time it sees the Delivered stage, then
// looks up the review status once and asks for a rating if anything is unrated.
// It reports whether this call performed the notification.
func (n *DeliveredNotifier) Observe(ctx context.Context, snapshot models.TrackingSnapshot) bool {
	if snapshot.Stage != models.StageDelivered {
		return false
	}

	if !n.notified.CompareAndSwap(false, true) {
		return false
	}

	metrics.DeliveredNotifications.Inc()

	snapshot.Delivered = true
	n.presenter.PresentDelivered(ctx, snapshot)

	review, err := n.backend.GetReviewStatus(ctx, n.orderID)
	if err != nil {
		logger.Log.Warn("failed to fetch review status", zap.String("orderID", n.orderID), zap.Error(err))
		return true
	}

	if review == nil {
		review = &models.ReviewStatus{}
	}

	if review.NeedsRating() {
		metrics.RatingPrompts.Inc()
		n.presenter.PromptRating(ctx, snapshot, *review)
	}

	return true
}

func (n *DeliveredNotifier) Notified() bool {
	return n.notified.Load()
}
