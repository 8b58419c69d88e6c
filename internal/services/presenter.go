package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/logger"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"
)

// LogPresenter writes delivery notifications to the log.
type LogPresenter struct{}

func NewLogPresenter() *LogPresenter {
	return &LogPresenter{}
}

func (LogPresenter) PresentDelivered(_ context.Context, snapshot models.TrackingSnapshot) {
	logger.Log.Info("order delivered",
		zap.String("orderID", snapshot.OrderID),
		zap.String("sessionID", snapshot.SessionID),
	)
}

func (LogPresenter) PromptRating(_ context.Context, snapshot models.TrackingSnapshot, review models.ReviewStatus) {
	logger.Log.Info("rating requested",
		zap.String("orderID", snapshot.OrderID),
		zap.String("sessionID", snapshot.SessionID),
		zap.Bool("restaurantReviewed", bool(review.RestaurantReviewed)),
		zap.Bool("deliveryReviewed", bool(review.DeliveryReviewed)),
	)
}
