package services

import (
	"context"
	"errors"
	"userhub/internal/logger"
	"userhub/internal/models"
	"userhub/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidName     = errors.New("name can't be greater than 25 characters")
	ErrInvalidPassword = errors.New("password should be between 8-12 characters and have a special character")

	// ErrInvalidCredentials — единый ответ и на неизвестный email, и на
	// неверный пароль: по тексту ошибки нельзя понять, что именно не так.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
}

type AuthService struct {
	repo     UserRepo
	sessions *SessionService
}

func NewAuthService(repo UserRepo, sessions *SessionService) *AuthService {
	return &AuthService{repo: repo, sessions: sessions}
}

// Register создаёт учётную запись. Пароль хешируется до записи —
// открытый текст не попадает ни в хранилище, ни в логи.
// Сессия при регистрации не стартует: пользователь входит отдельно.
func (s *AuthService) Register(ctx context.Context, name, email, plainPassword string) (*models.User, error) {
	logger.Log.Info("Регистрация пользователя (service)", zap.String("email", email))

	if !utils.IsValidEmail(email) {
		logger.Log.Warn("Невалидный email при регистрации (service)", zap.String("email", email))
		return nil, ErrInvalidEmail
	}
	if !utils.IsValidName(name) {
		logger.Log.Warn("Слишком длинное имя при регистрации (service)")
		return nil, ErrInvalidName
	}
	if !utils.IsValidPassword(plainPassword) {
		logger.Log.Warn("Пароль не прошёл политику (service)", zap.String("email", email))
		return nil, ErrInvalidPassword
	}

	hashed, err := utils.HashPassword(plainPassword)
	if err != nil {
		logger.Log.Error("Ошибка хеширования пароля (service)", zap.Error(err))
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		logger.Log.Error("Ошибка создания пользователя (service)", zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Пользователь зарегистрирован (service)", zap.String("email", email), zap.Int("user_id", user.ID))
	return user, nil
}

// Login проверяет учётные данные и стартует сессию.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	logger.Log.Info("Попытка входа (service)", zap.String("email", email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Log.Warn("Пользователь не найден (service)", zap.String("email", email), zap.Error(err))
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Log.Warn("Неверный пароль (service)", zap.String("email", email))
		return nil, "", ErrInvalidCredentials
	}

	sessionID, err := s.sessions.Start(ctx, user.Email, user.Name)
	if err != nil {
		logger.Log.Error("Ошибка создания сессии при входе (service)", zap.Error(err))
		return nil, "", err
	}

	logger.Log.Info("Вход выполнен (service)", zap.String("email", email))
	return user, sessionID, nil
}

// Logout уничтожает сессию; ошибка — только если хранилище недоступно.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	logger.Log.Info("Выход пользователя (service)")
	return s.sessions.Destroy(ctx, sessionID)
}
