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

type HabitModule struct {
	Handler *handlers.HabitHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewHabitModule(h *handlers.HabitHandler, users repository.UserRepository, jwt *helpers.JWTManager) *HabitModule {
	return &HabitModule{Handler: h, Users: users, JWT: jwt}
}

func (m *HabitModule) Register(rg *gin.RouterGroup) {
	habits := rg.Group("/habits")
	habits.Use(middleware.Auth(m.Users, m.JWT))
	habits.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		habits.GET("", m.Handler.List)
		habits.GET("/:id", m.Handler.Get)
		habits.POST("", m.Handler.Create)
		habits.PUT("/:id", m.Handler.Update)
		habits.DELETE("/:id", m.Handler.Delete)
		habits.POST("/:id/completions", m.Handler.ToggleCompletion)
	}
}
