package models

import "time"

// Session — серверная запись о входе. Клиенту уходит только SessionID (cookie),
// остальное живёт в хранилище сессий до logout или истечения срока.
type Session struct {
	SessionID string    `json:"-"`
	UserEmail string    `json:"user_email"`
	UserName  string    `json:"user_name"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
