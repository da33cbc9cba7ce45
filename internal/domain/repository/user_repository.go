// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"clinic/internal/domain/entity"
	"clinic/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrProfileNotFound is returned when a user has no profile.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileExists is returned when a user already has a profile.
	ErrProfileExists = errors.New("profile already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with its profile if any.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by username, with its profile if any.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername reports whether the username is already registered.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create persists a new user. The profile, if set, is not written.
	Create(ctx context.Context, user *entity.User) error
}

// ProfileRepository persists the role assignment of a user.
type ProfileRepository interface {
	// FindByUserID returns ErrProfileNotFound if the user has no profile.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Create returns ErrProfileExists if the user already has one.
	Create(ctx context.Context, profile *entity.Profile) error
}
