package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ughyper3/Spodaily-api/internal/config"
	"github.com/ughyper3/Spodaily-api/internal/handlers"
	"github.com/ughyper3/Spodaily-api/internal/middleware"
	"github.com/ughyper3/Spodaily-api/internal/repository"
	"github.com/ughyper3/Spodaily-api/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) error {
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	contactRepo := repository.NewContactRepository(db)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	accountService := services.NewAccountService(userRepo)
	accountHandler := handlers.NewAccountHandler(accountService)
	workoutService := services.NewWorkoutService(sessionRepo, activityRepo, exerciseRepo)
	sessionHandler := handlers.NewSessionHandler(workoutService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseRepo)
	contactHandler := handlers.NewContactHandler(contactRepo)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	account := authProtected.Group("/account")
	account.Get("", accountHandler.GetAccount)
	account.Put("", accountHandler.UpdateAccount)

	sessions := authProtected.Group("/sessions")
	sessions.Post("", sessionHandler.CreateSession)
	sessions.Get("", sessionHandler.ListSessions)
	sessions.Get("/:uuid", sessionHandler.GetSession)
	sessions.Delete("/:uuid", sessionHandler.DeleteSession)
	sessions.Post("/:uuid/activities", sessionHandler.AddActivity)
	sessions.Get("/:uuid/activities", sessionHandler.ListActivities)

	authProtected.Get("/exercises", exerciseHandler.ListExercises)
	authProtected.Post("/contact", contactHandler.SubmitContact)

	if cfg.RulesEnabled() {
		if err := registerRulesPage(app); err != nil {
			return err
		}
	}

	return nil
}
