// Package syncstore хранилища снимка состояния отеля.
// Каждая реализация сохраняет и читает документ как непрозрачные байты по ключу синхронизации
package syncstore

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNotFound возвращается, когда по ключу ничего не сохранено
	ErrNotFound = errors.New("syncstore: document not found")

	// ErrInvalidKey возвращается для пустого или небезопасного ключа
	ErrInvalidKey = errors.New("syncstore: invalid sync key")
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,127}$`)

// ValidateKey допускает латиницу, цифры и символы "_.-", без слэшей и ".."
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) || strings.Contains(key, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
