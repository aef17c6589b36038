package handlers

import (
	"net/http"

	"github.com/taskboard-dev/taskboard/internal/adapters/http/dto"
	"github.com/taskboard-dev/taskboard/internal/ports"
)

// TaskHandler handles HTTP requests for task lifecycle operations, both
// nested under a project and flat by task ID.
type TaskHandler struct {
	svc ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// CreateTask handles POST /api/v1/projects/{projectID}/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTask(r.Context(), projectID, mapCreateTaskRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(created))
}

// ListTasks handles GET /api/v1/projects/{projectID}/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tasks, err := h.svc.ListTasks(r.Context(), projectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// UpdateTask handles PATCH /api/v1/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTask(r.Context(), id, mapUpdateTaskRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(updated))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTask(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BulkUpdateTasks handles PATCH /api/v1/projects/{projectID}/tasks/bulk.
func (h *TaskHandler) BulkUpdateTasks(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.BulkUpdateTasksRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updates := make([]ports.TaskUpdate, len(req.Updates))
	for i, u := range req.Updates {
		updates[i] = ports.TaskUpdate{
			TaskID: u.TaskID,
			Patch:  mapUpdateTaskRequest(&u.UpdateTaskRequest),
		}
	}

	result, err := h.svc.BulkUpdateTasks(r.Context(), projectID, updates)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBulkUpdateResponse(result))
}
