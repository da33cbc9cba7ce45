// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityResolver maps an authenticated user to its role.
type IdentityResolver interface {
	// Resolve returns entity.RoleUnassigned, not an error, when the user has no profile.
	Resolve(ctx context.Context, userID uuid.UUID) (entity.Role, error)
}

// AccessGate decides whether a role may perform an operation.
type AccessGate interface {
	// Authorize returns nil when allowed, ErrProfileMissing for an unassigned role
	// and ErrForbidden for a role the policy does not grant.
	Authorize(ctx context.Context, role entity.Role, op entity.Operation) error
}
