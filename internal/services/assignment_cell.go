package services

import (
	"reflect"
	"sync"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"
)

// AssignmentCell holds the session's view of the order's assignment. The poller and
// the creator both write to it; the last applied record wins, except that a terminal
// assignment is never replaced.
type AssignmentCell struct {
	mu      sync.RWMutex
	current *models.Assignment
}

func NewAssignmentCell() *AssignmentCell {
	return &AssignmentCell{}
}

// Load returns a copy of the held assignment, nil when there is none yet.
func (c *AssignmentCell) Load() *models.Assignment {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.current.Clone()
}

func (c *AssignmentCell) Held() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.current != nil
}

func (c *AssignmentCell) IsTerminal() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.current.IsTerminal()
}

// Store replaces the held assignment and reports whether the held value changed.
// Nil and identical records are no-ops, as is anything arriving after a terminal one.
func (c *AssignmentCell) Store(assignment *models.Assignment) bool {
	if assignment == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current.IsTerminal() {
		return false
	}

	if reflect.DeepEqual(c.current, assignment) {
		return false
	}

	c.current = assignment.Clone()

	return true
}
