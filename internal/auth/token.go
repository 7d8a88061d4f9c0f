// Package auth issues and parses bearer tokens and carries the authenticated
// actor through the request context.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken возвращается для поддельного, просроченного или неразборчивого токена
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrIssueToken возвращается при ошибке подписи токена
	ErrIssueToken = errors.New("auth: failed to issue token")
)

const issuer = "smc-garage-service"

// Claims содержимое JWT: subject - ID пользователя
type Claims struct {
	jwt.RegisteredClaims
}

// TokenManager подписывает и проверяет HS256 токены
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager создает менеджер токенов
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue выпускает токен для пользователя, действительный ttl с момента now
func (m *TokenManager) Issue(userID uuid.UUID, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrIssueToken, err)
	}

	return signed, expiresAt, nil
}

// Parse проверяет подпись и срок действия и возвращает ID пользователя
func (m *TokenManager) Parse(tokenStr string) (uuid.UUID, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject: %v", ErrInvalidToken, err)
	}

	return userID, nil
}
