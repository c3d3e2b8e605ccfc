package services

import (
	"context"
	"errors"
	"testing"
	"time"
	"userhub/internal/repository"
)

func TestSessionService_StartLoadDestroy(t *testing.T) {
	sessions := NewSessionService(repository.NewSessionRepository(), time.Hour)
	ctx := context.Background()

	id, err := sessions.Start(ctx, "ann@x.com", "Ann")
	if err != nil {
		t.Fatalf("ошибка старта сессии: %v", err)
	}
	if id == "" {
		t.Fatal("пустой идентификатор сессии")
	}

	s, err := sessions.Load(ctx, id)
	if err != nil {
		t.Fatalf("ошибка загрузки сессии: %v", err)
	}
	if s.UserEmail != "ann@x.com" || s.UserName != "Ann" {
		t.Fatalf("в сессии чужие данные: %+v", s)
	}
	if !s.ExpiresAt.After(time.Now()) {
		t.Fatal("новая сессия уже истекла")
	}

	if err := sessions.Destroy(ctx, id); err != nil {
		t.Fatalf("ошибка уничтожения сессии: %v", err)
	}
	if _, err := sessions.Load(ctx, id); !errors.Is(err, repository.ErrSessionNotFound) {
		t.Fatalf("после Destroy ожидался ErrSessionNotFound, получено %v", err)
	}
}

func TestSessionService_OpaqueUniqueIDs(t *testing.T) {
	sessions := NewSessionService(repository.NewSessionRepository(), time.Hour)
	ctx := context.Background()

	id1, err := sessions.Start(ctx, "ann@x.com", "Ann")
	if err != nil {
		t.Fatalf("ошибка старта сессии: %v", err)
	}
	id2, err := sessions.Start(ctx, "ann@x.com", "Ann")
	if err != nil {
		t.Fatalf("ошибка старта сессии: %v", err)
	}
	if id1 == id2 {
		t.Fatal("идентификаторы сессий должны быть уникальны")
	}
}

func TestSessionService_ExpiredNotLoaded(t *testing.T) {
	// TTL в одну наносекунду: к моменту Load сессия гарантированно истекла
	sessions := NewSessionService(repository.NewSessionRepository(), time.Nanosecond)
	ctx := context.Background()

	id, err := sessions.Start(ctx, "ann@x.com", "Ann")
	if err != nil {
		t.Fatalf("ошибка старта сессии: %v", err)
	}

	time.Sleep(time.Millisecond)

	if _, err := sessions.Load(ctx, id); !errors.Is(err, repository.ErrSessionNotFound) {
		t.Fatalf("истёкшая сессия должна быть недоступна, получено %v", err)
	}
}
