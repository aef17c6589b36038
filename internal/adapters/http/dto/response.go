// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/taskboard-dev/taskboard/internal/domain/project"
	"github.com/taskboard-dev/taskboard/internal/domain/task"
	"github.com/taskboard-dev/taskboard/internal/ports"
)

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// ProjectListResponse represents a list of projects in HTTP responses.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ToProjectResponse converts a domain Project entity to an HTTP response DTO.
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

// ToProjectListResponse converts a slice of domain Project entities to an
// HTTP list response DTO.
func ToProjectListResponse(projects []project.Project) ProjectListResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i])
	}
	return ProjectListResponse{
		Projects: items,
		Count:    len(items),
	}
}

// TaskResponse represents a single task in HTTP responses. DueDate is empty
// when the task has no due date.
type TaskResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	TaskType  string `json:"task_type"`
	DueDate   string `json:"due_date,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// TaskListResponse represents a list of tasks in HTTP responses.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToTaskResponse converts a domain Task entity to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:        t.ID,
		ProjectID: t.ProjectID,
		Title:     t.Title,
		TaskType:  t.Type.String(),
		Status:    t.Status.String(),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(DueDateLayout)
	}
	return resp
}

// ToTaskListResponse converts a slice of domain Task entities to an HTTP
// list response DTO.
func ToTaskListResponse(tasks []task.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return TaskListResponse{
		Tasks: items,
		Count: len(items),
	}
}

// BulkUpdateTasksResponse represents the result of a bulk update operation.
// It includes both successful updates and per-item errors.
type BulkUpdateTasksResponse struct {
	Updated   []TaskResponse        `json:"updated"`
	Errors    []BulkUpdateErrorItem `json:"errors"`
	Total     int                   `json:"total"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

// BulkUpdateErrorItem represents a single failed update within a bulk operation.
type BulkUpdateErrorItem struct {
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}

// ToBulkUpdateResponse converts a ports.BulkUpdateResult to an HTTP response DTO.
func ToBulkUpdateResponse(result *ports.BulkUpdateResult) BulkUpdateTasksResponse {
	updated := make([]TaskResponse, len(result.Updated))
	for i := range result.Updated {
		updated[i] = ToTaskResponse(&result.Updated[i])
	}

	errs := make([]BulkUpdateErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkUpdateErrorItem{
			TaskID:  e.TaskID,
			Message: e.Err.Error(),
		}
	}

	total := len(result.Updated) + len(result.Errors)
	return BulkUpdateTasksResponse{
		Updated:   updated,
		Errors:    errs,
		Total:     total,
		Succeeded: len(result.Updated),
		Failed:    len(result.Errors),
	}
}
