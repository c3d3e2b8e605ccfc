package utils

import (
	"errors"
	"testing"
	"time"
)

func TestResetToken_RoundTrip(t *testing.T) {
	token, err := GenerateResetToken("mysecret", 42, time.Hour)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	userID, err := ParseResetToken("mysecret", token)
	if err != nil {
		t.Fatalf("ошибка проверки токена: %v", err)
	}
	if userID != 42 {
		t.Fatalf("ожидался user_id 42, получен %d", userID)
	}
}

func TestResetToken_Expired(t *testing.T) {
	token, err := GenerateResetToken("mysecret", 42, -time.Minute)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	_, err = ParseResetToken("mysecret", token)
	if !errors.Is(err, ErrResetTokenExpired) {
		t.Fatalf("ожидался ErrResetTokenExpired, получено %v", err)
	}
}

func TestResetToken_Tampered(t *testing.T) {
	token, err := GenerateResetToken("mysecret", 42, time.Hour)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	// Портим один символ подписи
	b := []byte(token)
	last := len(b) - 1
	if b[last] == 'A' {
		b[last] = 'B'
	} else {
		b[last] = 'A'
	}

	_, err = ParseResetToken("mysecret", string(b))
	if !errors.Is(err, ErrResetTokenInvalid) {
		t.Fatalf("ожидался ErrResetTokenInvalid, получено %v", err)
	}
}

func TestResetToken_WrongSecret(t *testing.T) {
	token, err := GenerateResetToken("mysecret", 42, time.Hour)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	_, err = ParseResetToken("othersecret", token)
	if !errors.Is(err, ErrResetTokenInvalid) {
		t.Fatalf("ожидался ErrResetTokenInvalid, получено %v", err)
	}
}

func TestResetToken_Malformed(t *testing.T) {
	if _, err := ParseResetToken("mysecret", "not-a-token"); !errors.Is(err, ErrResetTokenInvalid) {
		t.Fatalf("ожидался ErrResetTokenInvalid, получено %v", err)
	}
}
