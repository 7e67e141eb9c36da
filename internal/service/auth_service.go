package service

import (
	"errors"
	"fmt"
	"time"

	"campusfeed/internal/apperrors"
	"campusfeed/internal/identity"
	"campusfeed/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("недействительный токен")

// AuthService maps bearer tokens to request identities. Login and password
// handling live in the identity provider that issues the tokens.
type AuthService interface {
	IssueToken(id identity.Identity, ttl time.Duration) (string, error)
	ParseToken(tokenString string) (identity.Identity, error)
}

type authService struct {
	secret []byte
}

func NewAuthService(secret string) AuthService {
	return &authService{secret: []byte(secret)}
}

func (s *authService) IssueToken(id identity.Identity, ttl time.Duration) (string, error) {
	if id.UserID == "" || !id.Role.Valid() {
		return "", apperrors.Validation("для токена нужны идентификатор пользователя и роль")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": id.UserID,
		"role":    string(id.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *authService) ParseToken(tokenString string) (identity.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return identity.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return identity.Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return identity.Identity{}, ErrInvalidToken
	}

	userID, ok1 := claims["user_id"].(string)
	role, ok2 := claims["role"].(string)
	if !ok1 || !ok2 || userID == "" || !models.Role(role).Valid() {
		return identity.Identity{}, fmt.Errorf("%w: неверные данные в токене", ErrInvalidToken)
	}

	return identity.Identity{UserID: userID, Role: models.Role(role)}, nil
}
