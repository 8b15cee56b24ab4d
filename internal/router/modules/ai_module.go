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

type AIModule struct {
	Handler *handlers.AIHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewAIModule(h *handlers.AIHandler, users repository.UserRepository, jwt *helpers.JWTManager) *AIModule {
	return &AIModule{Handler: h, Users: users, JWT: jwt}
}

func (m *AIModule) Register(rg *gin.RouterGroup) {
	ai := rg.Group("/ai")
	ai.Use(middleware.Auth(m.Users, m.JWT))
	// Model calls are expensive; keep the per-user budget small.
	ai.Use(middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByUserID(), nil))
	{
		ai.POST("/suggestion", m.Handler.Suggest)
	}
}
