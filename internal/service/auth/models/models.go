package models

import "time"

// LoginRequest вход администратора
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse токен доступа. При выключенной авторизации токен пустой
type LoginResponse struct {
	Token        string     `json:"token,omitempty"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	AuthRequired bool       `json:"authRequired"`
}
