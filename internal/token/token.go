// Package token issues and verifies the signed bearer tokens that gate the
// API. Tokens are self-contained: validity is determined entirely by the
// HMAC signature and the embedded expiry, there is no revocation list.
package token

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned for every verification failure. Malformed,
// tampered and expired tokens are deliberately indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity payload embedded in every issued token.
type Claims struct {
	ConfigID string `json:"configId"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}

type Service struct {
	secret   []byte
	lifetime time.Duration
}

// NewService builds a token service. An empty signing secret is a fatal
// misconfiguration, never a request-time error.
func NewService(secret string, lifetime time.Duration) (*Service, error) {
	if len(secret) == 0 {
		return nil, errors.New("token: JWT_SECRET is not configured")
	}
	return &Service{
		secret:   []byte(secret),
		lifetime: lifetime,
	}, nil
}

// Issue signs a token carrying the config identity, valid for the configured
// lifetime.
func (s *Service) Issue(configID uuid.UUID, name string) (string, error) {
	now := time.Now()
	claims := &Claims{
		ConfigID: configID.String(),
		Name:     name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature integrity and expiry and returns the embedded
// claims. Any failure collapses to ErrInvalidToken.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
