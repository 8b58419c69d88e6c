package services

import "github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"

// ResolveStage maps the latest known order and assignment statuses onto a track stage.
// An empty order status counts as PENDING, an empty assignment status as "no assignment yet".
// The first matching rule wins.
func ResolveStage(orderStatus models.OrderStatus, assignmentStatus models.AssignmentStatus) models.TrackStage {
	order := models.NormalizeOrderStatus(string(orderStatus))
	assignment := models.NormalizeAssignmentStatus(string(assignmentStatus))

	switch {
	case order == models.OrderStatusDelivered || assignment == models.AssignmentDelivered:
		return models.StageDelivered
	case order == models.OrderStatusOutForDelivery || isOutForDelivery(assignment):
		return models.StageOutForDelivery
	case isOrderInKitchen(order) || isHeadingToPickup(assignment):
		return models.StagePreparing
	default:
		return models.StagePlaced
	}
}

func isOutForDelivery(status models.AssignmentStatus) bool {
	switch status {
	case models.AssignmentPickedUp, models.AssignmentHeadingToDelivery, models.AssignmentArrivedAtDelivery:
		return true
	}

	return false
}

func isHeadingToPickup(status models.AssignmentStatus) bool {
	switch status {
	case models.AssignmentAccepted, models.AssignmentHeadingToPickup, models.AssignmentArrivedAtPickup:
		return true
	}

	return false
}

func isOrderInKitchen(status models.OrderStatus) bool {
	switch status {
	case models.OrderStatusPreparing, models.OrderStatusAccepted, models.OrderStatusReadyForPickup:
		return true
	}

	return false
}
