package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID    uuid.UUID `json:"uid"`
	SessionID uuid.UUID `json:"sid"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the signed tokens that identify a session.
type TokenService interface {
	// Issue signs a token for the given session, valid until expiresAt.
	Issue(userID, sessionID uuid.UUID, expiresAt time.Time) (string, error)

	// Validate checks signature and expiry and returns the claims.
	Validate(token string) (*Claims, error)

	// Hash returns the digest stored alongside the session.
	Hash(token string) string

	// SessionTTL returns how long a new session lives.
	SessionTTL() time.Duration
}
