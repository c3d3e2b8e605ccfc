package repository

import (
	"context"
	"errors"
	"testing"
	"time"
	"userhub/internal/models"
)

func TestSessionRepository_SaveGetDelete(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	s := &models.Session{
		SessionID: "sid-1",
		UserEmail: "ann@x.com",
		UserName:  "Ann",
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("ошибка сохранения сессии: %v", err)
	}

	got, err := repo.Get(ctx, "sid-1")
	if err != nil {
		t.Fatalf("ошибка чтения сессии: %v", err)
	}
	if got.UserEmail != "ann@x.com" || got.UserName != "Ann" {
		t.Fatalf("сессия вернулась с чужими данными: %+v", got)
	}

	if err := repo.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("ошибка удаления сессии: %v", err)
	}
	if _, err := repo.Get(ctx, "sid-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("после удаления ожидался ErrSessionNotFound, получено %v", err)
	}
}

func TestSessionRepository_ExpiredIsNotFound(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	_ = repo.Save(ctx, &models.Session{
		SessionID: "sid-expired",
		UserEmail: "ann@x.com",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	if _, err := repo.Get(ctx, "sid-expired"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("истёкшая сессия должна быть неотличима от отсутствующей, получено %v", err)
	}
}

func TestSessionRepository_Sweep(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	_ = repo.Save(ctx, &models.Session{SessionID: "live", ExpiresAt: time.Now().Add(time.Hour)})
	_ = repo.Save(ctx, &models.Session{SessionID: "dead-1", ExpiresAt: time.Now().Add(-time.Minute)})
	_ = repo.Save(ctx, &models.Session{SessionID: "dead-2", ExpiresAt: time.Now().Add(-time.Hour)})

	removed, err := repo.Sweep(ctx)
	if err != nil {
		t.Fatalf("ошибка чистки: %v", err)
	}
	if removed != 2 {
		t.Fatalf("ожидалось 2 удалённых, получено %d", removed)
	}
	if _, err := repo.Get(ctx, "live"); err != nil {
		t.Fatalf("живая сессия не должна удаляться: %v", err)
	}
}
