package routes

import (
	"log"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires repositories, usecases and handlers and mounts the API
// under /api. Reads are public; job mutation, user self-update and
// application decisions sit behind the bearer-token middleware.
func Register(app *fiber.App, cfg config.Config, db database.DB, cache usecase.ListCache, logger *log.Logger) {
	if app == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, cache, logger)
	applicationUC := usecase.NewApplicationUsecase(jobRepo, applicationRepo, userRepo)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	jobHandler := handler.NewJobHandler(jobUC)
	applicationHandler := handler.NewApplicationHandler(applicationUC)

	handler.NewHealthHandler().RegisterRoutes(app)

	api := app.Group("/api")

	users := api.Group("/users")
	authHandler.RegisterRoutes(users)
	userHandler.RegisterRoutes(users)

	protectedUsers := api.Group("/users", authMw.Middleware())
	userHandler.RegisterProtectedRoutes(protectedUsers)

	jobs := api.Group("/jobs")
	jobHandler.RegisterRoutes(jobs)
	applicationHandler.RegisterRoutes(jobs)

	protectedJobs := api.Group("/jobs", authMw.Middleware())
	jobHandler.RegisterProtectedRoutes(protectedJobs)
	applicationHandler.RegisterProtectedRoutes(protectedJobs)
}
