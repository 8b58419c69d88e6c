package models

import "strings"

type AssignmentStatus string

const (
	AssignmentAssigned          AssignmentStatus = "ASSIGNED"
	AssignmentAccepted          AssignmentStatus = "ACCEPTED"
	AssignmentHeadingToPickup   AssignmentStatus = "HEADING_TO_PICKUP"
	AssignmentArrivedAtPickup   AssignmentStatus = "ARRIVED_AT_PICKUP"
	AssignmentPickedUp          AssignmentStatus = "PICKED_UP"
	AssignmentHeadingToDelivery AssignmentStatus = "HEADING_TO_DELIVERY"
	AssignmentArrivedAtDelivery AssignmentStatus = "ARRIVED_AT_DELIVERY"
	AssignmentDelivered         AssignmentStatus = "DELIVERED"
	AssignmentCancelled         AssignmentStatus = "CANCELLED"
	AssignmentFailed            AssignmentStatus = "FAILED"
)

func NormalizeAssignmentStatus(raw string) AssignmentStatus {
	return AssignmentStatus(strings.ToUpper(strings.TrimSpace(raw)))
}

// IsTerminal reports whether no further transitions can happen after the status.
func (s AssignmentStatus) IsTerminal() bool {
	switch NormalizeAssignmentStatus(string(s)) {
	case AssignmentDelivered, AssignmentCancelled, AssignmentFailed:
		return true
	}

	return false
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Assignment struct {
	ID                       ID               `json:"id"`
	OrderID                  ID               `json:"orderId"`
	DeliveryPartnerID        ID               `json:"deliveryPartnerId,omitempty"`
	Status                   AssignmentStatus `json:"status"`
	Pickup                   *Location        `json:"pickupLocation,omitempty"`
	Delivery                 *Location        `json:"deliveryLocation,omitempty"`
	Current                  *Location        `json:"currentLocation,omitempty"`
	EstimatedDurationMinutes *int             `json:"estimatedDurationMinutes,omitempty"`
}

func (a *Assignment) IsTerminal() bool {
	return a != nil && a.Status.IsTerminal()
}

// Clone returns a deep copy so that holders of a snapshot can't mutate shared state.
func (a *Assignment) Clone() *Assignment {
	if a == nil {
		return nil
	}

	clone := *a
	clone.Pickup = cloneLocation(a.Pickup)
	clone.Delivery = cloneLocation(a.Delivery)
	clone.Current = cloneLocation(a.Current)

	if a.EstimatedDurationMinutes != nil {
		minutes := *a.EstimatedDurationMinutes
		clone.EstimatedDurationMinutes = &minutes
	}

	return &clone
}

func cloneLocation(l *Location) *Location {
	if l == nil {
		return nil
	}

	clone := *l
	return &clone
}
