package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/service"
)

// TaskHandler serves the task endpoints.
type TaskHandler struct {
	tasks  service.TaskService
	codec  *service.TaskCodec
	logger *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(tasks service.TaskService, codec *service.TaskCodec, logger *slog.Logger) *TaskHandler {
	if tasks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("tasks cannot be nil for TaskHandler")
	}
	if codec == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("codec cannot be nil for TaskHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}
	return &TaskHandler{
		tasks:  tasks,
		codec:  codec,
		logger: logger.With(slog.String("component", "task_handler")),
	}
}

// Routes mounts the task endpoints on r.
func (h *TaskHandler) Routes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.ListTasks)
		r.Post("/", h.CreateTask)
		r.Put("/", h.UpdateTask)
		r.Get("/search", h.SearchTasks)
		r.Get("/category/{name}", h.ListTasksByCategory)
		r.Get("/{id}", h.GetTask)
		r.Delete("/{id}", h.DeleteTask)
	})
}

// ListTasks handles GET /tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.ListOrdered(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, h.codec.EncodeAll(tasks))
}

// GetTask handles GET /tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.tasks.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, h.codec.Encode(task))
}

// SearchTasks handles GET /tasks/search?keyword=.
func (h *TaskHandler) SearchTasks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("keyword") {
		HandleAPIError(w, r, domain.NewInvalidTaskError("Required parameter 'keyword' is missing"))
		return
	}

	tasks, err := h.tasks.Search(r.Context(), query.Get("keyword"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, h.codec.EncodeAll(tasks))
}

// ListTasksByCategory handles GET /tasks/category/{name}.
func (h *TaskHandler) ListTasksByCategory(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.ListByCategory(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, h.codec.EncodeAll(tasks))
}

// CreateTask handles POST /tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	patch, ok := h.decodePatch(w, r)
	if !ok {
		return
	}

	created, err := h.tasks.Create(r.Context(), patch.NewTask())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("task created via API", slog.String("task_uuid", created.UUID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, h.codec.Encode(created))
}

// UpdateTask handles PUT /tasks. The body identifies the task by uuid.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	patch, ok := h.decodePatch(w, r)
	if !ok {
		return
	}

	updated, err := h.tasks.Update(r.Context(), patch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, h.codec.Encode(updated))
}

// DeleteTask handles DELETE /tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.tasks.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) decodePatch(w http.ResponseWriter, r *http.Request) (domain.TaskPatch, bool) {
	var payload service.TaskPayload
	if err := shared.DecodeJSON(w, r, &payload); err != nil {
		HandleAPIError(w, r, err)
		return domain.TaskPatch{}, false
	}

	patch, err := h.codec.Decode(r.Context(), payload)
	if err != nil {
		HandleAPIError(w, r, err)
		return domain.TaskPatch{}, false
	}
	return patch, true
}
