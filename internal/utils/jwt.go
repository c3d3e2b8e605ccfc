package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrResetTokenExpired = errors.New("reset token expired")
	ErrResetTokenInvalid = errors.New("invalid reset token")
)

// GenerateResetToken создаёт подписанный токен сброса пароля.
// Payload не секретен — важна только невозможность подделки (HS256).
func GenerateResetToken(secret string, userID int, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"exp":        time.Now().Add(duration).Unix(),
		"iat":        time.Now().Unix(), // issued at — доп. уникальность
		"token_type": "password_reset",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseResetToken проверяет подпись и срок действия, возвращает user_id.
// Просроченный токен отличаем от битого: у них разные ответы пользователю.
func ParseResetToken(secret, tokenString string) (int, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrResetTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrResetTokenExpired
		}
		return 0, ErrResetTokenInvalid
	}
	if !token.Valid {
		return 0, ErrResetTokenInvalid
	}

	if t, ok := claims["token_type"].(string); !ok || t != "password_reset" {
		return 0, ErrResetTokenInvalid
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, ErrResetTokenInvalid
	}
	return int(userID), nil
}
