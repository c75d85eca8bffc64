package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the lifetime of every issued token.
const DefaultTTL = time.Hour

var (
	ErrExpired           = errors.New("token expired")
	ErrMalformed         = errors.New("token malformed")
	ErrAlgorithmMismatch = errors.New("token signing algorithm not allowed")
)

// signingMethod is the only algorithm this service will sign or accept.
// Verification checks the token's declared algorithm against it before the
// signature is ever looked at, which closes algorithm-confusion attacks.
var signingMethod = jwt.SigningMethodHS256

// Service issues and verifies signed bearer tokens. The secret is injected
// once at construction and treated as immutable.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token whose subject is userID, expiring ttl from now.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(signingMethod, claims).SignedString(s.secret)
}

// Verify checks the signature and expiry of tokenString and returns its
// subject. Failures are classified as ErrAlgorithmMismatch, ErrExpired, or
// ErrMalformed so callers can map them without string matching.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != signingMethod.Alg() {
			return nil, ErrAlgorithmMismatch
		}
		return s.secret, nil
	})
	switch {
	case errors.Is(err, ErrAlgorithmMismatch):
		return "", ErrAlgorithmMismatch
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrExpired
	case err != nil:
		return "", ErrMalformed
	}
	if !tok.Valid || claims.Subject == "" {
		return "", ErrMalformed
	}
	return claims.Subject, nil
}
