package repository

import (
	"context"
	"time"

	"clinic/internal/domain/entity"
	"clinic/internal/errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session is not found.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores login sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteExpiredByUser removes the user's sessions that expired before now and reports how many.
	DeleteExpiredByUser(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error)
}
