package router

import (
	"github.com/dailyforge/dailyforge-api/internal/ai"
	"github.com/dailyforge/dailyforge-api/internal/application"
	"github.com/dailyforge/dailyforge-api/internal/container"
	pginfra "github.com/dailyforge/dailyforge-api/internal/infrastructure/postgres"
	handlers "github.com/dailyforge/dailyforge-api/internal/interface/http"
	"github.com/dailyforge/dailyforge-api/internal/router/modules"
	"github.com/dailyforge/dailyforge-api/internal/search"
)

// InitModules wires repositories, services and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(pool)
	tokenRepo := pginfra.NewResetTokenRepository(pool)
	taskRepo := pginfra.NewTaskRepository(pool)
	expenseRepo := pginfra.NewExpenseRepository(pool)
	habitRepo := pginfra.NewHabitRepository(pool)

	var publisher application.EmailPublisher
	if pub := container.GetRabbitPub(); pub != nil {
		publisher = pub
	}
	authService := application.NewAuthService(
		userRepo, tokenRepo, jwt, publisher, logger,
		cfg.ResetTokenTTL, cfg.ResetPasswordURL,
	)

	var indexer *search.TaskIndexer
	if es := container.GetES(); es != nil {
		indexer = search.NewTaskIndexer(es, cfg.ESTasksIndex, logger)
	}
	taskService := application.NewTaskService(taskRepo, indexer)
	expenseService := application.NewExpenseService(expenseRepo)
	habitService := application.NewHabitService(habitRepo)

	gemini := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	suggestionService := application.NewSuggestionService(
		taskRepo, expenseRepo, habitRepo, gemini, container.GetRedis(), logger,
	)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authService, logger), userRepo, jwt))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskService, logger), userRepo, jwt))
	r.Add(modules.NewExpenseModule(handlers.NewExpenseHandler(expenseService, logger), userRepo, jwt))
	r.Add(modules.NewHabitModule(handlers.NewHabitHandler(habitService, logger), userRepo, jwt))
	r.Add(modules.NewAIModule(handlers.NewAIHandler(suggestionService, logger), userRepo, jwt))
}
