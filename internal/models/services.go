package models

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -destination=mocks/mock_backend.go . DeliveryBackend
type DeliveryBackend interface {
	GetOrder(ctx context.Context, orderID string) (*Order, error)

	// GetAssignmentByOrder returns nil without an error when no assignment exists yet.
	GetAssignmentByOrder(ctx context.Context, orderID string) (*Assignment, error)

	CreateAssignment(ctx context.Context, orderID string) (*Assignment, error)

	GetReviewStatus(ctx context.Context, orderID string) (*ReviewStatus, error)
}

//go:generate mockgen -destination=mocks/mock_presenter.go . Presenter
type Presenter interface {
	PresentDelivered(ctx context.Context, snapshot TrackingSnapshot)

	PromptRating(ctx context.Context, snapshot TrackingSnapshot, review ReviewStatus)
}

//go:generate mockgen -destination=mocks/mock_jwt.go . JWTService
type JWTService interface {
	ValidateToken(token string) (*jwt.Token, error)
}

//go:generate mockgen -destination=mocks/mock_tracking.go . TrackingService
type TrackingService interface {
	// StartTracking starts a session for the order or refreshes the order of an
	// existing one. The returned flag is true when a new session was started.
	StartTracking(ctx context.Context, viewer Viewer, orderID string) (TrackingSnapshot, bool, error)

	GetSnapshot(viewer Viewer, orderID string) (TrackingSnapshot, error)

	Subscribe(viewer Viewer, orderID string) (<-chan TrackingEvent, func(), error)

	StopTracking(viewer Viewer, orderID string) error

	// Shutdown stops every session and closes their subscriptions.
	Shutdown() error
}
