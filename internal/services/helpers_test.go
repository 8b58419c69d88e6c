package services

import (
	"context"
	"sync"
	"time"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"
)

// inlineDispatcher runs jobs on the caller's goroutine.
type inlineDispatcher struct {
	mu     sync.Mutex
	jobs   int
	pauses []time.Duration
}

func (d *inlineDispatcher) Enqueue(job Job) error {
	d.mu.Lock()
	d.jobs++
	d.mu.Unlock()

	job(context.Background())

	return nil
}

func (d *inlineDispatcher) ScheduleJob(job Job, delay time.Duration) {
	time.AfterFunc(delay, func() {
		_ = d.Enqueue(job)
	})
}

func (d *inlineDispatcher) PauseAndResume(delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pauses = append(d.pauses, delay)
}

func (d *inlineDispatcher) Pauses() []time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]time.Duration(nil), d.pauses...)
}

// staticOrders is an order source whose order can be swapped by the test.
type staticOrders struct {
	mu    sync.Mutex
	order models.Order
}

func (s *staticOrders) Order() models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.order
}

func (s *staticOrders) Set(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = order
}

func assignmentWithStatus(status models.AssignmentStatus) *models.Assignment {
	return &models.Assignment{ID: "a1", OrderID: "42", DeliveryPartnerID: "p1", Status: status}
}
