package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/domain/task"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"

	// DueDateLayout is the wire format for task due dates.
	DueDateLayout = "2006-01-02"
)

// CreateProjectRequest represents the JSON body for creating a new project.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateTaskRequest represents the JSON body for creating a new task.
// DueDate is optional and uses the "2006-01-02" layout.
type CreateTaskRequest struct {
	Title    string `json:"title"`
	TaskType string `json:"task_type"`
	DueDate  string `json:"due_date,omitempty"`
}

// Validate checks that required fields are present and optional fields have
// valid values. Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if !task.Type(r.TaskType).IsValid() {
		fields["task_type"] = fmt.Sprintf("invalid: %q", r.TaskType)
	}
	if r.DueDate != "" {
		if _, err := time.Parse(DueDateLayout, r.DueDate); err != nil {
			fields["due_date"] = fmt.Sprintf("must match %q", DueDateLayout)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateTaskRequest represents the JSON body for updating an existing task.
// All fields are optional; nil means "do not change this field".
type UpdateTaskRequest struct {
	Title   *string `json:"title,omitempty"`
	DueDate *string `json:"due_date,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// Validate checks that any provided fields have valid values. Status values
// are checked for membership only; transition legality is enforced by the
// domain state machine. Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}
	if r.DueDate != nil {
		if _, err := time.Parse(DueDateLayout, *r.DueDate); err != nil {
			fields["due_date"] = fmt.Sprintf("must match %q", DueDateLayout)
		}
	}
	if r.Status != nil && !task.Status(*r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// BulkTaskUpdate pairs a task ID with its partial update in a bulk request.
type BulkTaskUpdate struct {
	TaskID string `json:"task_id"`
	UpdateTaskRequest
}

// BulkUpdateTasksRequest represents the JSON body for updating multiple
// tasks within a project in one request.
type BulkUpdateTasksRequest struct {
	Updates []BulkTaskUpdate `json:"updates"`
}

// Validate checks that the request carries at least one update and that each
// item names a task and has valid field values.
// Returns a *domain.ValidationError if any checks fail.
func (r *BulkUpdateTasksRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.Updates) == 0 {
		fields["updates"] = msgRequired
	}
	for i, u := range r.Updates {
		if strings.TrimSpace(u.TaskID) == "" {
			fields[fmt.Sprintf("updates[%d].task_id", i)] = msgRequired
		}
		if err := u.UpdateTaskRequest.Validate(); err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				for field, msg := range verr.Fields {
					fields[fmt.Sprintf("updates[%d].%s", i, field)] = msg
				}
			}
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
