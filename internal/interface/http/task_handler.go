package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dailyforge/dailyforge-api/internal/application"
	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
	"github.com/dailyforge/dailyforge-api/internal/domain/repository"
	"github.com/dailyforge/dailyforge-api/pkg/response"
	"github.com/dailyforge/dailyforge-api/pkg/validation"
)

type TaskHandler struct {
	Tasks  *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(tasks *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Tasks: tasks, Logger: logger}
}

type createTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	Category    *string `json:"category"`
}

type updateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	Category    *string `json:"category"`
	IsCompleted *bool   `json:"is_completed"`
}

// List GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.Tasks.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.Logger.WithError(err).Error("failed to list tasks")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, tasks, "ok", nil)
}

// Get GET /api/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	t, err := h.Tasks.Get(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "task not found", nil)
			return
		}
		h.Logger.WithError(err).Error("failed to get task")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, t, "ok", nil)
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	t := &entity.Task{
		UserID:      c.GetString("userID"),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}
	if req.Deadline != nil && *req.Deadline != "" {
		d, err := entity.ParseDate(*req.Deadline)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"deadline": "must be a YYYY-MM-DD date"})
			return
		}
		t.Deadline = &d
	}

	if err := h.Tasks.Create(c.Request.Context(), t); err != nil {
		h.Logger.WithError(err).Error("failed to create task")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, t, "task created", nil)
}

// Update PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	patch := entity.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Category:    req.Category,
		IsCompleted: req.IsCompleted,
	}
	if patch.Empty() {
		response.Error[any](c, http.StatusBadRequest, "no fields to update", nil)
		return
	}

	t, err := h.Tasks.Update(c.Request.Context(), c.Param("id"), c.GetString("userID"), patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "task not found", nil)
			return
		}
		h.Logger.WithError(err).Error("failed to update task")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, t, "task updated", nil)
}

// Delete DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	err := h.Tasks.Delete(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "task not found", nil)
			return
		}
		h.Logger.WithError(err).Error("failed to delete task")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search GET /api/tasks/search?q=
func (h *TaskHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"q": "is required"})
		return
	}
	tasks, err := h.Tasks.Search(c.Request.Context(), c.GetString("userID"), q)
	if err != nil {
		h.Logger.WithError(err).Error("task search failed")
		response.Error[any](c, http.StatusServiceUnavailable, "search is currently unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, tasks, "ok", nil)
}
