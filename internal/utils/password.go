package utils

import "golang.org/x/crypto/bcrypt"

// Стоимость bcrypt зафиксирована: терпимо для интерактивного логина,
// дорого для перебора.
const bcryptCost = 10

// HashPassword возвращает bcrypt-хеш пароля. Соль генерируется на каждый
// вызов, поэтому одинаковые пароли дают разные дайджесты.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash сверяет пароль с хешем. Несовпадение — это false,
// а не ошибка.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
