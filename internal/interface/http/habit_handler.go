package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dailyforge/dailyforge-api/internal/application"
	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
	"github.com/dailyforge/dailyforge-api/internal/domain/repository"
	"github.com/dailyforge/dailyforge-api/pkg/response"
	"github.com/dailyforge/dailyforge-api/pkg/validation"
)

type HabitHandler struct {
	Habits *application.HabitService
	Logger *logrus.Logger
}

func NewHabitHandler(habits *application.HabitService, logger *logrus.Logger) *HabitHandler {
	return &HabitHandler{Habits: habits, Logger: logger}
}

type createHabitRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Frequency   string  `json:"frequency" binding:"required,oneof=daily weekly monthly"`
	Goal        *string `json:"goal"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
}

type updateHabitRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Frequency   *string `json:"frequency" binding:"omitempty,oneof=daily weekly monthly"`
	Goal        *string `json:"goal"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
}

type toggleCompletionRequest struct {
	Date  string  `json:"date" binding:"required,datetime=2006-01-02"`
	Notes *string `json:"notes"`
}

// List GET /api/habits
func (h *HabitHandler) List(c *gin.Context) {
	habits, err := h.Habits.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.Logger.WithError(err).Error("failed to list habits")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, habits, "ok", nil)
}

// Get GET /api/habits/:id
func (h *HabitHandler) Get(c *gin.Context) {
	habit, err := h.Habits.Get(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "habit not found", nil)
			return
		}
		h.Logger.WithError(err).Error("failed to get habit")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, habit, "ok", nil)
}

// Create POST /api/habits
func (h *HabitHandler) Create(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	habit := &entity.Habit{
		UserID:      c.GetString("userID"),
		Name:        req.Name,
		Description: req.Description,
		Frequency:   req.Frequency,
		Goal:        req.Goal,
		Color:       req.Color,
		Icon:        req.Icon,
		Completions: []entity.HabitCompletion{},
	}
	if err := h.Habits.Create(c.Request.Context(), habit); err != nil {
		h.Logger.WithError(err).Error("failed to create habit")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, habit, "habit created", nil)
}

// Update PUT /api/habits/:id
func (h *HabitHandler) Update(c *gin.Context) {
	var req updateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	patch := entity.HabitPatch{
		Name:        req.Name,
		Description: req.Description,
		Frequency:   req.Frequency,
		Goal:        req.Goal,
		Color:       req.Color,
		Icon:        req.Icon,
	}
	if patch.Empty() {
		response.Error[any](c, http.StatusBadRequest, "no fields to update", nil)
		return
	}

	habit, err := h.Habits.Update(c.Request.Context(), c.Param("id"), c.GetString("userID"), patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "habit not found", nil)
			return
		}
		h.Logger.WithError(err).Error("failed to update habit")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, habit, "habit updated", nil)
}

// Delete DELETE /api/habits/:id
func (h *HabitHandler) Delete(c *gin.Context) {
	err := h.Habits.Delete(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "habit not found", nil)
			return
		}
		h.Logger.WithError(err).Error("failed to delete habit")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleCompletion POST /api/habits/:id/completions
// Flips the habit state for one day: 201 when a completion was created,
// 200 when an existing one was removed.
func (h *HabitHandler) ToggleCompletion(c *gin.Context) {
	var req toggleCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"date": "must be a YYYY-MM-DD date"})
		return
	}

	result, err := h.Habits.ToggleCompletion(c.Request.Context(), c.Param("id"), c.GetString("userID"), day, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Error[any](c, http.StatusNotFound, "habit not found", nil)
		case errors.Is(err, repository.ErrConflict):
			response.Error[any](c, http.StatusConflict, "completion already recorded for that date", nil)
		default:
			h.Logger.WithError(err).Error("failed to toggle habit completion")
			response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		}
		return
	}

	status := http.StatusOK
	message := "completion removed"
	if result.Created {
		status = http.StatusCreated
		message = "completion recorded"
	}
	response.Success(c, status, result, message, nil)
}
