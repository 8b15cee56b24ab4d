package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dailyforge/dailyforge-api/internal/container"
	"github.com/dailyforge/dailyforge-api/internal/domain/repository"
	handlers "github.com/dailyforge/dailyforge-api/internal/interface/http"
	"github.com/dailyforge/dailyforge-api/internal/interface/middleware"
	"github.com/dailyforge/dailyforge-api/pkg/helpers"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, users repository.UserRepository, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, Users: users, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with tight IP-based rate limits; login/register and
	// reset-init are the credential-stuffing surface.
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	resetInitLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	resetConfirmLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/request-password-reset", resetInitLimiter, m.Handler.RequestPasswordReset)
	rg.POST("/auth/reset-password/:token", resetConfirmLimiter, m.Handler.ResetPassword)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, m.JWT))
	{
		auth.GET("/auth/me", m.Handler.Me)
		auth.PUT("/auth/change-password", m.Handler.ChangePassword)
	}
}
