package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/m04kA/PetHotelService/internal/service/auth/models"
)

const (
	RoleAdmin = "admin"
	issuer    = "pet-hotel-service"
)

// Claims содержимое токена администратора
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service вход по паролю администратора и проверка HS256 токенов.
// Пустой пароль выключает авторизацию
type Service struct {
	password     string
	secret       []byte
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(password, secret string, ttl time.Duration, logger Logger) *Service {
	return &Service{
		password:     password,
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Enabled включена ли авторизация
func (s *Service) Enabled() bool {
	return s.password != ""
}

// Login проверяет пароль и выдает токен
func (s *Service) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	if !s.Enabled() {
		return &models.LoginResponse{AuthRequired: false}, nil
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.password)) != 1 {
		s.logger.Warn("Login: invalid password")
		return nil, ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   RoleAdmin,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("Login: failed to sign token: %v", err)
		return nil, fmt.Errorf("%w: sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: token issued, expires at %s", expiresAt.Format(time.RFC3339))
	return &models.LoginResponse{
		Token:        token,
		ExpiresAt:    &expiresAt,
		AuthRequired: true,
	}, nil
}

// Validate проверяет подпись, срок и роль токена
func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.timeProvider.Now), jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Role != RoleAdmin {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
