package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"userhub/internal/logger"
	"userhub/internal/services"
	helpers "userhub/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PasswordHandler struct {
	svc *services.PasswordService
}

func NewPasswordHandler(svc *services.PasswordService) *PasswordHandler {
	return &PasswordHandler{svc: svc}
}

type forgotReq struct {
	Email string `json:"email"`
}

// Forgot godoc
// @Summary Запрос восстановления пароля
// @Description Отправляет письмо со ссылкой для сброса пароля. Ответ всегда одинаковый, даже если e-mail не найден.
// @Tags password
// @Accept json
// @Produce json
// @Param input body forgotReq true "Email пользователя"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/password/forgot [post]
func (h *PasswordHandler) Forgot(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req forgotReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		log.Warn("Невалидный payload в Forgot")
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	// Не раскрываем, существует ли email — всегда возвращаем 200.
	// Сервис различает NotFound, но наружу различие не выходит.
	if err := h.svc.RequestReset(r.Context(), req.Email); err != nil {
		log.Warn("Сбой при запросе восстановления пароля", zap.String("email_masked", maskEmail(req.Email)), zap.Error(err))
	} else {
		log.Info("Запрошено восстановление пароля", zap.String("email_masked", maskEmail(req.Email)))
	}

	helpers.JSON(w, http.StatusOK, map[string]string{"message": "If the email exists, a reset link has been sent."})
}

type resetReq struct {
	NewPassword string `json:"new_password"`
}

// Reset godoc
// @Summary Сброс пароля по токену
// @Description Устанавливает новый пароль по токену из письма. Токен приходит сегментом пути, как в ссылке.
// @Tags password
// @Accept json
// @Produce json
// @Param token path string true "Токен сброса"
// @Param input body resetReq true "Новый пароль"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/password/reset/{token} [post]
func (h *PasswordHandler) Reset(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	token := mux.Vars(r)["token"]
	if strings.TrimSpace(token) == "" {
		log.Warn("Отсутствует токен в Reset")
		helpers.Error(w, http.StatusBadRequest, "token not provided")
		return
	}

	var req resetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.NewPassword) == "" {
		log.Warn("Невалидный payload в Reset")
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := h.svc.ResetPassword(r.Context(), token, req.NewPassword); err != nil {
		log.Warn("Не удалось сбросить пароль по токену", zap.Error(err))
		switch {
		case errors.Is(err, services.ErrTokenExpired),
			errors.Is(err, services.ErrTokenInvalid),
			errors.Is(err, services.ErrUserNotFound),
			errors.Is(err, services.ErrInvalidPassword):
			// Детали токена наружу не выдаём.
			helpers.Error(w, http.StatusBadRequest, "invalid token or password")
		default:
			helpers.Error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	log.Info("Пароль успешно сброшен")
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Password has been reset."})
}
