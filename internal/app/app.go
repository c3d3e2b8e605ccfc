package app

import (
	"context"
	"time"
	"userhub/internal/config"
	"userhub/internal/db"
	"userhub/internal/handlers"
	"userhub/internal/repository"
	"userhub/internal/routes"
	"userhub/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil {
		sessionTTL = time.Hour
	}
	resetTTL, err := time.ParseDuration(cfg.ResetTokenTTL)
	if err != nil {
		resetTTL = time.Hour
	}

	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	sessionRepo := repository.NewSessionRepository()

	// Сервисы
	sessionService := services.NewSessionService(sessionRepo, sessionTTL)
	authService := services.NewAuthService(userRepo, sessionService)
	resetTokenService := services.NewResetTokenService(cfg.JWTSecret, resetTTL)
	passwordService := services.NewPasswordService(userRepo, resetTokenService, cfg.FrontendURL)
	emailService := services.NewEmailService(cfg)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService, sessionTTL)
	passwordHandler := handlers.NewPasswordHandler(passwordService)

	// Периодическая чистка истёкших сессий
	StartSessionSweeper(sessionService)

	// Воркеры отправки писем
	for i := 0; i < 3; i++ {
		services.StartEmailWorker(emailService)
	}

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, authHandler, passwordHandler, sessionService)

	return router, nil
}

func StartSessionSweeper(sessions *services.SessionService) {
	t := time.NewTicker(1 * time.Hour)
	go func() {
		for range t.C {
			sessions.SweepExpired(context.Background())
		}
	}()
}
