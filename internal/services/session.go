package services

import (
	"context"
	"time"
	"userhub/internal/logger"
	"userhub/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionStore interface {
	Save(ctx context.Context, s *models.Session) error
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
	Sweep(ctx context.Context) (int, error)
}

type SessionService struct {
	store SessionStore
	ttl   time.Duration
}

func NewSessionService(store SessionStore, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionService{store: store, ttl: ttl}
}

// Start создаёт сессию и возвращает её идентификатор. Запись фиксируется
// в хранилище до возврата: следующий запрос клиента уже может принести cookie.
func (s *SessionService) Start(ctx context.Context, userEmail, userName string) (string, error) {
	now := time.Now()
	session := &models.Session{
		SessionID: uuid.New().String(),
		UserEmail: userEmail,
		UserName:  userName,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.store.Save(ctx, session); err != nil {
		logger.Log.Error("Ошибка сохранения сессии (service)", zap.Error(err))
		return "", err
	}
	logger.Log.Debug("Сессия создана (service)", zap.String("email", userEmail), zap.Time("expires_at", session.ExpiresAt))
	return session.SessionID, nil
}

// Load возвращает сессию по идентификатору; для протухшей или
// несуществующей — repository.ErrSessionNotFound.
func (s *SessionService) Load(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.store.Get(ctx, sessionID)
}

func (s *SessionService) Destroy(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		logger.Log.Error("Ошибка удаления сессии (service)", zap.Error(err))
		return err
	}
	logger.Log.Debug("Сессия удалена (service)")
	return nil
}

// SweepExpired — периодическая чистка для хранилища сессий.
func (s *SessionService) SweepExpired(ctx context.Context) {
	removed, err := s.store.Sweep(ctx)
	if err != nil {
		logger.Log.Error("Ошибка чистки сессий (service)", zap.Error(err))
		return
	}
	if removed > 0 {
		logger.Log.Info("Истёкшие сессии удалены (service)", zap.Int("removed", removed))
	}
}
