package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "order_tracker"

// Results of a single assignment poll.
const (
	PollFound = "found"
	PollEmpty = "empty"
	PollError = "error"
)

// Results of a single assignment creation attempt.
const (
	CreateCreated  = "created"
	CreateConflict = "conflict"
	CreateFailed   = "failed"
	CreateSkipped  = "skipped"
)

var (
	AssignmentPolls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignment_polls_total",
		Help:      "Assignment-by-order fetches made by pollers, by result.",
	}, []string{"result"})

	AssignmentCreations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignment_creation_attempts_total",
		Help:      "Lazy assignment creation attempts, by result.",
	}, []string{"result"})

	DeliveredNotifications = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "delivered_notifications_total",
		Help:      "Sessions that observed their order being delivered.",
	})

	RatingPrompts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rating_prompts_total",
		Help:      "Rating prompts raised after delivery.",
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Tracking sessions currently running.",
	})
)
