package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID создает случайный токен сессии из 16 hex-символов.
// Криптографический источник нужен, чтобы токены нельзя было угадать.
func GenerateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate session token: " + err.Error())
	}
	return hex.EncodeToString(b)
}
