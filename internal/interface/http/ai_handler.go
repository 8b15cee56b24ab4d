package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dailyforge/dailyforge-api/internal/ai"
	"github.com/dailyforge/dailyforge-api/internal/application"
	"github.com/dailyforge/dailyforge-api/pkg/response"
	"github.com/dailyforge/dailyforge-api/pkg/validation"
)

type AIHandler struct {
	Suggestions *application.SuggestionService
	Logger      *logrus.Logger
}

func NewAIHandler(suggestions *application.SuggestionService, logger *logrus.Logger) *AIHandler {
	return &AIHandler{Suggestions: suggestions, Logger: logger}
}

type suggestionRequest struct {
	SuggestionType string                       `json:"suggestion_type" binding:"required"`
	Data           *application.SuggestionEvent `json:"data"`
}

// Suggest POST /api/ai/suggestion (auth required)
// A model that cannot be reached is a 503, never a 500; the client treats
// it as "try again later".
func (h *AIHandler) Suggest(c *gin.Context) {
	var req suggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	suggestion, err := h.Suggestions.Suggest(
		c.Request.Context(),
		c.GetString("userID"),
		c.GetString("username"),
		req.SuggestionType,
		req.Data,
	)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			response.Error[any](c, http.StatusServiceUnavailable, "ai service could not generate a suggestion at this time", nil)
			return
		}
		h.Logger.WithError(err).Error("ai suggestion failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, suggestion, "ok", nil)
}
