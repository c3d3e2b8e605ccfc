package routes

import (
	"net/http"
	"userhub/internal/handlers"
	"userhub/internal/middleware"
	"userhub/internal/services"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	authHandler *handlers.AuthHandler,
	passwordHandler *handlers.PasswordHandler,
	sessionService *services.SessionService,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	api.HandleFunc("/password/forgot", passwordHandler.Forgot).Methods("POST")
	api.HandleFunc("/password/reset/{token}", passwordHandler.Reset).Methods("POST")

	// --- Защищённые сессией ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(func(next http.Handler) http.Handler {
		return middleware.SessionAuth(sessionService, next)
	})

	protected.HandleFunc("/profile", authHandler.Profile).Methods("GET")
}
