package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dailyforge/dailyforge-api/internal/application"
	"github.com/dailyforge/dailyforge-api/pkg/response"
	"github.com/dailyforge/dailyforge-api/pkg/validation"
)

type AuthHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

// Password strength is deliberately not a binding rule here: the service
// checks the email first so a taken address reports a conflict even when
// the password is too short.
type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, token, err := h.Auth.Register(c.Request.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrDuplicateEmail):
			response.Error[any](c, http.StatusConflict, "email already in use", nil)
		case errors.Is(err, application.ErrWeakPassword):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		default:
			h.Logger.WithError(err).Error("register failed")
			response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user":  u.Public(),
		"token": token,
	}, "registered", nil)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, token, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  u.Public(),
		"token": token,
	}, "logged in", nil)
}

// Me GET /api/auth/me (auth required)
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.Auth.GetUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("profile lookup failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, u.Public(), "ok", nil)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,pwd"`
}

// ChangePassword PUT /api/auth/change-password (auth required)
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	err := h.Auth.ChangePassword(c.Request.Context(), c.GetString("userID"), req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidCredentials):
			response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		case errors.Is(err, application.ErrWeakPassword):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, application.ErrUserNotFound):
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
		default:
			h.Logger.WithError(err).Error("change password failed")
			response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password changed", nil)
}

type requestResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RequestPasswordReset POST /api/auth/request-password-reset
// The reply is the same whether or not the email exists.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req requestResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if err := h.Auth.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		h.Logger.WithError(err).Error("password reset request failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil,
		"if an account with that email exists, a reset link has been sent", nil)
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,pwd"`
}

// ResetPassword POST /api/auth/reset-password/:token
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	err := h.Auth.ResetPassword(c.Request.Context(), c.Param("token"), req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidOrExpiredToken):
			response.Error[any](c, http.StatusBadRequest, "invalid or expired reset token", nil)
		case errors.Is(err, application.ErrWeakPassword):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		default:
			h.Logger.WithError(err).Error("password reset failed")
			response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password has been reset", nil)
}
