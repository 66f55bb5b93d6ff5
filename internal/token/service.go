package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed = errors.New("token is malformed")
	ErrSignature = errors.New("token signature is invalid")
	ErrExpired   = errors.New("token is expired")
)

// Service mints and verifies stateless HMAC-signed session tokens.
// The signing key is loaded once at startup; rotating it invalidates
// every outstanding token.
type Service struct {
	key []byte
	ttl time.Duration
}

func NewService(key []byte, ttl time.Duration) *Service {
	return &Service{key: key, ttl: ttl}
}

// Issue signs a token whose subject is the user ID, valid for the
// configured TTL from now.
func (s *Service) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded user ID.
func (s *Service) Verify(raw string) (int64, error) {
	var claims jwt.RegisteredClaims
	t, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.key, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrSignature
		default:
			return 0, ErrMalformed
		}
	}
	if !t.Valid {
		return 0, ErrSignature
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrMalformed
	}
	return userID, nil
}
