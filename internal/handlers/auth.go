package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
	"userhub/internal/logger"
	"userhub/internal/middleware"
	"userhub/internal/models"
	"userhub/internal/repository"
	"userhub/internal/services"
	helpers "userhub/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
	sessionTTL  time.Duration
}

func NewAuthHandler(authService *services.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, sessionTTL: sessionTTL}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body registerRequest true "Данные регистрации"
// @Success 201 {string} string "Пользователь успешно зарегистрирован"
// @Failure 400 {string} string "Ошибка валидации"
// @Failure 409 {string} string "Email уже занят"
// @Router /api/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Ошибка декодирования JSON в Register", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	log.Info("Регистрация пользователя", zap.String("email_masked", maskEmail(req.Email)))

	user, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			log.Warn("Регистрация с занятым email", zap.String("email_masked", maskEmail(req.Email)))
			helpers.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrInvalidEmail),
			errors.Is(err, services.ErrInvalidName),
			errors.Is(err, services.ErrInvalidPassword):
			helpers.Error(w, http.StatusBadRequest, err.Error())
		default:
			log.Error("Ошибка регистрации пользователя", zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	// Приветственное письмо — в очередь, результат запроса от него не зависит.
	services.EmailQueue <- services.EmailJob{
		To:      []string{user.Email},
		Subject: "Добро пожаловать",
		Body:    helpers.BuildWelcomeHTML(user.Name),
		IsHTML:  true,
	}

	// Сессию при регистрации не открываем — вход отдельным запросом.
	helpers.JSON(w, http.StatusCreated, "Пользователь успешно зарегистрирован")
}

// Login godoc
// @Summary Вход пользователя
// @Description Проверяет учётные данные и устанавливает cookie сессии.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Данные для входа"
// @Success 200 {object} loginResponse
// @Failure 401 {string} string "Неверный email или пароль"
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Ошибка декодирования JSON в Login", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	log.Info("Попытка входа", zap.String("email_masked", maskEmail(req.Email)))

	user, sessionID, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn("Ошибка входа пользователя", zap.String("email_masked", maskEmail(req.Email)))
			helpers.Error(w, http.StatusUnauthorized, err.Error())
			return
		}
		log.Error("Сбой при входе пользователя", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("Вход выполнен", zap.String("email_masked", maskEmail(user.Email)))
	helpers.JSON(w, http.StatusOK, loginResponse{Name: user.Name, Email: user.Email})
}

// Logout godoc
// @Summary Выход (уничтожение сессии)
// @Tags auth
// @Produce json
// @Success 200 {string} string "Выход выполнен"
// @Failure 500 {string} string "Не удалось уничтожить сессию"
// @Router /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	cookie, err := r.Cookie(middleware.SessionCookie)
	if err == nil && cookie.Value != "" {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			log.Error("Не удалось уничтожить сессию", zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	// Гасим cookie в любом случае: после logout клиент анонимен.
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("Выход выполнен")
	helpers.JSON(w, http.StatusOK, "Выход выполнен")
}

// Profile godoc
// @Summary Данные текущей сессии
// @Tags profile
// @Produce json
// @Success 200 {object} models.Session
// @Failure 401 {string} string "Нет активной сессии"
// @Router /api/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	helpers.JSON(w, http.StatusOK, models.Session{
		UserEmail: session.UserEmail,
		UserName:  session.UserName,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	})
}

// maskEmail прячет локальную часть адреса в логах: a***@example.com.
func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 1 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
