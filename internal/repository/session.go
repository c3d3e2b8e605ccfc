package repository

import (
	"context"
	"errors"
	"sync"
	"time"
	"userhub/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository — процессное хранилище сессий. Сессии живут не дольше
// процесса, поэтому карта под RWMutex; протухшие записи убирает ленивая
// проверка на чтении и периодический Sweep.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]*models.Session)}
}

func (r *SessionRepository) Save(ctx context.Context, s *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.sessions[s.SessionID] = &cp
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(s.ExpiresAt) {
		// Протухшая сессия неотличима от отсутствующей.
		r.mu.Lock()
		delete(r.sessions, sessionID)
		r.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

// Sweep удаляет все истёкшие сессии, возвращает число удалённых.
func (r *SessionRepository) Sweep(ctx context.Context) (int, error) {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}
