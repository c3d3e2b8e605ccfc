package services

import (
	"time"
	"userhub/internal/logger"
	"userhub/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrTokenInvalid = utils.ErrResetTokenInvalid
	ErrTokenExpired = utils.ErrResetTokenExpired
)

// ResetTokenService выпускает и проверяет токены сброса пароля.
// Токен самодостаточен: user_id и срок действия зашиты в подписанный JWT,
// в БД ничего не хранится. Проверка сводится к подписи и exp.
type ResetTokenService struct {
	secret string
	ttl    time.Duration
}

func NewResetTokenService(secret string, ttl time.Duration) *ResetTokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ResetTokenService{secret: secret, ttl: ttl}
}

func (s *ResetTokenService) Issue(userID int) (string, error) {
	token, err := utils.GenerateResetToken(s.secret, userID, s.ttl)
	if err != nil {
		logger.Log.Error("Ошибка генерации токена сброса (service)", zap.Error(err), zap.Int("user_id", userID))
		return "", err
	}
	logger.Log.Debug("Токен сброса выпущен (service)", zap.Int("user_id", userID))
	return token, nil
}

// Validate возвращает user_id из токена. Просроченный токен — ErrTokenExpired,
// битый или подделанный — ErrTokenInvalid.
func (s *ResetTokenService) Validate(token string) (int, error) {
	userID, err := utils.ParseResetToken(s.secret, token)
	if err != nil {
		logger.Log.Warn("Невалидный токен сброса (service)", zap.Error(err))
		return 0, err
	}
	return userID, nil
}
