package utils

import (
	"regexp"
	"strings"
)

const (
	passwordMinLen = 8
	passwordMaxLen = 12
	maxNameLen     = 25

	passwordSpecials = "@$!%*?&"
)

var (
	emailRe = regexp.MustCompile(`.+@.+\..+`)
	// Пароль: только буквы, цифры и спецсимволы из passwordSpecials.
	// Требование "хотя бы один спецсимвол" проверяется отдельно —
	// в regexp нет lookahead.
	passwordCharsRe = regexp.MustCompile(`^[A-Za-z0-9@$!%*?&]+$`)
)

// IsValidEmail — базовая проверка формата e-mail.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidName — имя не длиннее 25 символов.
func IsValidName(name string) bool {
	return len([]rune(name)) <= maxNameLen
}

// IsValidPassword проверяет парольную политику: 8–12 символов,
// хотя бы один из @$!%*?&, и ничего кроме букв/цифр/этих символов.
func IsValidPassword(password string) bool {
	n := len(password)
	if n < passwordMinLen || n > passwordMaxLen {
		return false
	}
	if !strings.ContainsAny(password, passwordSpecials) {
		return false
	}
	return passwordCharsRe.MatchString(password)
}
