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

type ExpenseModule struct {
	Handler *handlers.ExpenseHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewExpenseModule(h *handlers.ExpenseHandler, users repository.UserRepository, jwt *helpers.JWTManager) *ExpenseModule {
	return &ExpenseModule{Handler: h, Users: users, JWT: jwt}
}

func (m *ExpenseModule) Register(rg *gin.RouterGroup) {
	expenses := rg.Group("/expenses")
	expenses.Use(middleware.Auth(m.Users, m.JWT))
	expenses.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		// /summary before /:id so Gin does not treat it as an id
		expenses.GET("", m.Handler.List)
		expenses.GET("/summary", m.Handler.Summary)
		expenses.GET("/:id", m.Handler.Get)
		expenses.POST("", m.Handler.Create)
		expenses.PUT("/:id", m.Handler.Update)
		expenses.DELETE("/:id", m.Handler.Delete)
	}
}
