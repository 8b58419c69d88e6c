package models

import (
	"encoding/json"
	"time"
)

// Viewer is the authenticated caller a tracking session belongs to.
type Viewer struct {
	Subject string
	Token   string
}

// TrackingSnapshot is what a viewer sees of a session. AwaitingPartner stays true
// while no assignment exists for the order.
type TrackingSnapshot struct {
	SessionID       string        `json:"sessionId"`
	OrderID         string        `json:"orderId"`
	OrderStatus     OrderStatus   `json:"orderStatus"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	Assignment      *Assignment   `json:"assignment,omitempty"`
	Stage           TrackStage    `json:"stage"`
	AwaitingPartner bool          `json:"awaitingPartner"`
	Polling         bool          `json:"polling"`
	Delivered       bool          `json:"delivered"`
	UpdatedAt       Timestamp     `json:"updatedAt"`
}

// Timestamp is encoded as an RFC 3339 string in UTC.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

type TrackingEventType string

const (
	EventSnapshot     TrackingEventType = "snapshot"
	EventDelivered    TrackingEventType = "delivered"
	EventRatingPrompt TrackingEventType = "rating_prompt"
)

type TrackingEvent struct {
	Type     TrackingEventType `json:"type"`
	Snapshot TrackingSnapshot  `json:"snapshot"`
	Review   *ReviewStatus     `json:"review,omitempty"`
}
