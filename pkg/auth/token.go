// Package auth issues and verifies the signed session tokens carried in
// the auth cookie. Tokens are signed so a forged cookie value never
// passes the gate.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionDuration is the cookie and token lifetime.
const SessionDuration = 30 * 24 * time.Hour

var (
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// TokenIssuer mints and verifies HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	issuer string
}

// NewTokenIssuer creates a token issuer for the given shared secret
func NewTokenIssuer(secret, issuer string) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("session secret must not be empty")
	}
	if issuer == "" {
		issuer = "lindsey"
	}
	return &TokenIssuer{secret: []byte(secret), issuer: issuer}, nil
}

// Issue creates a new signed session token valid for SessionDuration
func (t *TokenIssuer) Issue(now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    t.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks the signature, issuer and expiry of a session token
func (t *TokenIssuer) Verify(tokenString string) error {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidSignature
			}
			return t.secret, nil
		},
		jwt.WithIssuer(t.issuer),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return ErrExpiredToken
		case errors.Is(err, jwt.ErrSignatureInvalid):
			return ErrInvalidSignature
		default:
			return ErrInvalidToken
		}
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
