package services

import (
	"context"
	"fmt"
	"strings"
	"userhub/internal/logger"
	"userhub/internal/repository"
	"userhub/internal/utils"
	helpers "userhub/internal/utils/helpers"

	"go.uber.org/zap"
)

var ErrUserNotFound = repository.ErrUserNotFound

// PasswordService — двухфазный сброс пароля: запрос со ссылкой на почту
// и установка нового пароля по токену из ссылки.
type PasswordService struct {
	users  UserRepo
	tokens *ResetTokenService
	appURL string // фронтовый URL: ссылка вида /reset-password/<token>
}

func NewPasswordService(users UserRepo, tokens *ResetTokenService, appURL string) *PasswordService {
	return &PasswordService{
		users:  users,
		tokens: tokens,
		appURL: strings.TrimRight(appURL, "/"),
	}
}

// RequestReset выпускает токен и ставит письмо со ссылкой в очередь.
// Для неизвестного email возвращает ErrUserNotFound — решение о том,
// показывать ли это различие клиенту, принимает вызывающий слой.
// Сбой отправки письма не откатывает выпуск токена и не меняет результат.
func (s *PasswordService) RequestReset(ctx context.Context, email string) error {
	logger.Log.Info("Запрос на сброс пароля (service)", zap.String("email", email))

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Log.Warn("Не удалось найти пользователя при запросе сброса (service)",
			zap.String("email", email),
			zap.Error(err),
		)
		return ErrUserNotFound
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password/%s", s.appURL, token)
	EmailQueue <- EmailJob{
		To:      []string{user.Email},
		Subject: "Восстановление пароля",
		Body:    helpers.BuildPasswordResetHTML(resetLink),
		IsHTML:  true,
	}

	logger.Log.Info("Письмо со ссылкой на сброс пароля поставлено на отправку (service)",
		zap.Int("user_id", user.ID),
		zap.String("email", email),
	)
	return nil
}

// ResetPassword подтверждает токен и устанавливает новый пароль.
// Новый пароль проходит ту же политику, что и при регистрации.
func (s *PasswordService) ResetPassword(ctx context.Context, token, newPassword string) error {
	logger.Log.Info("Попытка сброса пароля по токену (service)")

	userID, err := s.tokens.Validate(token)
	if err != nil {
		return err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		logger.Log.Warn("Пользователь из токена не найден (service)", zap.Int("user_id", userID), zap.Error(err))
		return ErrUserNotFound
	}

	if !utils.IsValidPassword(newPassword) {
		logger.Log.Warn("Новый пароль не прошёл политику (service)", zap.Int("user_id", user.ID))
		return ErrInvalidPassword
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		logger.Log.Error("Ошибка хеширования нового пароля (service)", zap.Error(err), zap.Int("user_id", user.ID))
		return err
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hashed); err != nil {
		logger.Log.Error("Ошибка обновления пароля (service)", zap.Int("user_id", user.ID), zap.Error(err))
		return err
	}

	logger.Log.Info("Пароль успешно сброшен (service)", zap.Int("user_id", user.ID))
	return nil
}
