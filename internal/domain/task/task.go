// Package task defines the Task entity and its lifecycle rules: the status
// state machine, the recognized task types, and partial-update semantics.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskboard-dev/taskboard/internal/domain"
)

// Task represents a unit of work belonging to exactly one project, tracked
// through a status lifecycle. DueDate is optional; nil means no due date.
type Task struct {
	ID        string
	ProjectID string
	Title     string
	Type      Type
	DueDate   *time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if !t.Type.IsValid() {
		fields["task_type"] = fmt.Sprintf("invalid: %q", t.Type)
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
