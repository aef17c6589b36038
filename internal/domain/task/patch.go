package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskboard-dev/taskboard/internal/domain"
)

// Patch carries a partial update for a Task. Nil fields mean "leave
// unchanged"; a set field replaces the current value after validation.
type Patch struct {
	Title   *string
	DueDate *time.Time
	Status  *Status
}

// IsEmpty returns true if the patch carries no field changes.
func (p *Patch) IsEmpty() bool {
	return p.Title == nil && p.DueDate == nil && p.Status == nil
}

// Apply mutates t with the patch's provided fields. Each field is validated
// independently: an empty title yields a *domain.ValidationError, and a
// status change is checked against the state machine, yielding a
// *TransitionError on an illegal edge. On any error t is left unmodified.
func (p *Patch) Apply(t *Task) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return &domain.ValidationError{
			Fields: map[string]string{"title": "must not be empty"},
		}
	}
	if p.Status != nil {
		if !p.Status.IsValid() {
			return &domain.ValidationError{
				Fields: map[string]string{"status": fmt.Sprintf("invalid: %q", *p.Status)},
			}
		}
		if !t.Status.CanTransitionTo(*p.Status) {
			return &TransitionError{From: t.Status, To: *p.Status}
		}
	}

	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	return nil
}
