package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/PetHotelService/internal/api/handlers"
	"github.com/m04kA/PetHotelService/internal/service/auth"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "недействительный токен"
	msgExpiredToken = "срок действия токена истек"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// TokenValidator проверка токена администратора
type TokenValidator interface {
	Enabled() bool
	Validate(token string) (*auth.Claims, error)
}

// Auth проверяет заголовок Authorization: Bearer <token>.
// Если пароль администратора не задан, запросы пропускаются без проверки
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !validator.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := validator.Validate(token)
			if err != nil {
				if errors.Is(err, auth.ErrExpiredToken) {
					handlers.RespondUnauthorized(w, msgExpiredToken)
					return
				}
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext данные токена, положенные Auth
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
