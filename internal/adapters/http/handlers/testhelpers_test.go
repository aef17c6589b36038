package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/taskboard-dev/taskboard/internal/adapters/storage/memory"
	"github.com/taskboard-dev/taskboard/internal/app"
	"github.com/taskboard-dev/taskboard/internal/domain/project"
	"github.com/taskboard-dev/taskboard/internal/domain/task"
)

// fixture wires real services over in-memory stores so handler tests
// exercise the full decode -> service -> store -> encode path.
type fixture struct {
	projects *memory.ProjectStore
	tasks    *memory.TaskStore
	projSvc  *app.ProjectService
	taskSvc  *app.TaskService
}

func newFixture() *fixture {
	projects := memory.NewProjectStore()
	tasks := memory.NewTaskStore()
	return &fixture{
		projects: projects,
		tasks:    tasks,
		projSvc:  app.NewProjectService(projects, nil),
		taskSvc:  app.NewTaskService(projects, tasks, nil),
	}
}

// seedProject inserts a project directly into the store and returns it.
func (f *fixture) seedProject(t *testing.T, name string) *project.Project {
	t.Helper()
	p, err := f.projects.Create(context.Background(), &project.Project{Name: name})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return p
}

// seedTask inserts a task directly into the store and returns it.
func (f *fixture) seedTask(t *testing.T, projectID, title string, status task.Status) *task.Task {
	t.Helper()
	created, err := f.tasks.Create(context.Background(), &task.Task{
		ProjectID: projectID,
		Title:     title,
		Type:      task.TypeFeature,
		Status:    status,
	})
	if err != nil {
		t.Fatalf("seed task: %v", err)
	}
	return created
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func strPtr(s string) *string { return &s }
