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

type TaskModule struct {
	Handler *handlers.TaskHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewTaskModule(h *handlers.TaskHandler, users repository.UserRepository, jwt *helpers.JWTManager) *TaskModule {
	return &TaskModule{Handler: h, Users: users, JWT: jwt}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	tasks := rg.Group("/tasks")
	tasks.Use(middleware.Auth(m.Users, m.JWT))
	tasks.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		tasks.GET("", m.Handler.List)
		tasks.GET("/search", m.Handler.Search)
		tasks.GET("/:id", m.Handler.Get)
		tasks.POST("", m.Handler.Create)
		tasks.PUT("/:id", m.Handler.Update)
		tasks.DELETE("/:id", m.Handler.Delete)
	}
}
