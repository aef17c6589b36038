package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taskboard-dev/taskboard/internal/adapters/http/dto"
	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/domain/task"
	"github.com/taskboard-dev/taskboard/internal/ports"
)

// pathID extracts a non-empty string path parameter from the chi URL params.
func pathID(r *http.Request, param string) (string, error) {
	raw := chi.URLParam(r, param)
	if strings.TrimSpace(raw) == "" {
		return "", &domain.ValidationError{
			Fields: map[string]string{param: "must not be empty"},
		}
	}
	return raw, nil
}

// parseDueDate converts a wire due date to a *time.Time. The value must have
// passed request validation; a malformed value maps to nil.
func parseDueDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	d, err := time.Parse(dto.DueDateLayout, raw)
	if err != nil {
		return nil
	}
	return &d
}

// mapCreateTaskRequest converts a CreateTaskRequest DTO to the service-level
// task creation input.
func mapCreateTaskRequest(req *dto.CreateTaskRequest) ports.NewTask {
	return ports.NewTask{
		Title:   req.Title,
		Type:    task.Type(req.TaskType),
		DueDate: parseDueDate(req.DueDate),
	}
}

// mapUpdateTaskRequest converts an UpdateTaskRequest DTO to a domain patch.
// Absent JSON fields stay nil, preserving partial-update semantics.
func mapUpdateTaskRequest(req *dto.UpdateTaskRequest) task.Patch {
	p := task.Patch{Title: req.Title}
	if req.DueDate != nil {
		p.DueDate = parseDueDate(*req.DueDate)
	}
	if req.Status != nil {
		status := task.Status(*req.Status)
		p.Status = &status
	}
	return p
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
