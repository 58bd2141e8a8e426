package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrExpiredToken   = errors.New("token has expired")
)

// DefaultTTL applies when Issue is called without an explicit TTL.
const DefaultTTL = 15 * time.Minute

// Claims carries the subject (username) of a bearer token.
type Claims struct {
	jwt.RegisteredClaims
}

// Service signs and verifies bearer tokens with a symmetric key.
// The key is loaded once at startup and never mutated, so a Service
// is safe for concurrent use without locking.
type Service struct {
	secret []byte
}

var signToken = func(token *jwt.Token, secret []byte) (string, error) {
	return token.SignedString(secret)
}

// NewService creates a token service around the given signing secret.
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue signs a token asserting subject until now+ttl.
// A non-positive ttl falls back to DefaultTTL.
func (s *Service) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return signToken(token, s.secret)
}

// Verify parses and validates a token, returning its claims.
// Any failure other than expiry is folded into ErrMalformedToken;
// a failed verification never yields a subject.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrMalformedToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrMalformedToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrMalformedToken
	}

	return claims, nil
}
