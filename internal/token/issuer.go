package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- Error Definitions ---
var (
	ErrTokenInvalid = errors.New("token is missing, malformed, or has an invalid signature")
	ErrTokenExpired = errors.New("token has expired")
)

// Claims is the JWT payload carried by every issued token.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies bearer tokens. Tokens are HS256-signed and
// embed the subject id plus an absolute expiry derived from the configured
// lifetime.
type Issuer struct {
	secret   []byte
	lifetime time.Duration
}

// NewIssuer creates a token issuer. The secret must be non-empty and the
// lifetime must be an explicit positive duration; there is no implicit
// default unit.
func NewIssuer(secret string, lifetime time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("token secret cannot be empty")
	}
	if lifetime <= 0 {
		return nil, errors.New("token lifetime must be a positive duration")
	}
	return &Issuer{secret: []byte(secret), lifetime: lifetime}, nil
}

// Issue produces a signed token bound to the given subject id.
func (i *Issuer) Issue(subjectID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: subjectID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "workout-api",
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify parses and validates a token string, returning the embedded
// subject id. Any failure (absent, malformed, bad signature, expired)
// yields an error; callers map all of them to Unauthorized.
func (i *Issuer) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrTokenInvalid
	}

	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	if !t.Valid || claims.UserID == "" {
		return "", ErrTokenInvalid
	}
	return claims.UserID, nil
}
