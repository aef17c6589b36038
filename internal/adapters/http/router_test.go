package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	adapthttp "github.com/taskboard-dev/taskboard/internal/adapters/http"
	"github.com/taskboard-dev/taskboard/internal/adapters/http/handlers"
	"github.com/taskboard-dev/taskboard/internal/adapters/storage/memory"
	"github.com/taskboard-dev/taskboard/internal/app"
	"github.com/taskboard-dev/taskboard/internal/platform/health"
)

func newTestRouter(_ *testing.T, middlewares ...func(http.Handler) http.Handler) http.Handler {
	projects := memory.NewProjectStore()
	tasks := memory.NewTaskStore()

	registry := health.New()
	registry.Register(tasks)

	ph := handlers.NewProjectHandler(app.NewProjectService(projects, nil))
	th := handlers.NewTaskHandler(app.NewTaskService(projects, tasks, nil))
	hh := handlers.NewHealthHandler(registry)

	return adapthttp.NewRouter(ph, th, hh, middlewares...)
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/projects"},
		{http.MethodPost, "/api/v1/projects"},
		{http.MethodGet, "/api/v1/projects/{id}"},
		{http.MethodPost, "/api/v1/projects/{projectID}/tasks"},
		{http.MethodGet, "/api/v1/projects/{projectID}/tasks"},
		{http.MethodPatch, "/api/v1/projects/{projectID}/tasks/bulk"},
		{http.MethodPatch, "/api/v1/tasks/{id}"},
		{http.MethodDelete, "/api/v1/tasks/{id}"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := newTestRouter(t, testMW)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationListProjects(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/projects", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
