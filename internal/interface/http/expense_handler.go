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

type ExpenseHandler struct {
	Expenses *application.ExpenseService
	Logger   *logrus.Logger
}

func NewExpenseHandler(expenses *application.ExpenseService, logger *logrus.Logger) *ExpenseHandler {
	return &ExpenseHandler{Expenses: expenses, Logger: logger}
}

type createExpenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
}

type updateExpenseRequest struct {
	Description *string  `json:"description" binding:"omitempty,min=1"`
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0"`
	Category    *string  `json:"category" binding:"omitempty,min=1"`
	Date        *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// List GET /api/expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.Expenses.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.Logger.WithError(err).Error("failed to list expenses")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, expenses, "ok", nil)
}

// Get GET /api/expenses/:id
func (h *ExpenseHandler) Get(c *gin.Context) {
	e, err := h.Expenses.Get(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "expense not found", nil)
			return
		}
		h.Logger.WithError(err).Error("failed to get expense")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, e, "ok", nil)
}

// Create POST /api/expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	date, err := entity.ParseDate(req.Date)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"date": "must be a YYYY-MM-DD date"})
		return
	}

	e := &entity.Expense{
		UserID:      c.GetString("userID"),
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
	}
	if err := h.Expenses.Create(c.Request.Context(), e); err != nil {
		h.Logger.WithError(err).Error("failed to create expense")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, e, "expense created", nil)
}

// Update PUT /api/expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	var req updateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	patch := entity.ExpensePatch{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        req.Date,
	}
	if patch.Empty() {
		response.Error[any](c, http.StatusBadRequest, "no fields to update", nil)
		return
	}

	e, err := h.Expenses.Update(c.Request.Context(), c.Param("id"), c.GetString("userID"), patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "expense not found", nil)
			return
		}
		h.Logger.WithError(err).Error("failed to update expense")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, e, "expense updated", nil)
}

// Delete DELETE /api/expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	err := h.Expenses.Delete(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "expense not found", nil)
			return
		}
		h.Logger.WithError(err).Error("failed to delete expense")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary GET /api/expenses/summary
func (h *ExpenseHandler) Summary(c *gin.Context) {
	summary, err := h.Expenses.Summary(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.Logger.WithError(err).Error("failed to build expense summary")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, summary, "ok", nil)
}
