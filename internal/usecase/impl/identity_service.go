// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "clinic/internal/delivery/context"
	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"
	"clinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type identityService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// IdentityServiceParams holds dependencies for the identity resolver, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewIdentityService is the constructor for the identity resolver.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityResolver {
	return &identityService{
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve looks the profile up once. A missing or unrecognised profile yields RoleUnassigned.
func (srv *identityService) Resolve(ctx context.Context, userID uuid.UUID) (entity.Role, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		srv.log(ctx).Debug("User has no profile", slog.Any("user_id", userID))

		return entity.RoleUnassigned, nil
	}
	if err != nil {
		return entity.RoleUnassigned, errors.Wrap(err, "failed to resolve role")
	}

	if !profile.Role.IsAssignable() {
		srv.log(ctx).Warn("Profile carries an unknown role", slog.Any("user_id", userID), slog.String("role", profile.Role.String()))

		return entity.RoleUnassigned, nil
	}

	return profile.Role, nil
}
