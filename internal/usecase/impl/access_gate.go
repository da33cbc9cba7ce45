package impl

import (
	"context"
	"log/slog"

	deliverycontext "clinic/internal/delivery/context"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/service"
	"clinic/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type accessGate struct {
	policy service.AccessPolicy
	logger *slog.Logger
}

// AccessGateParams holds dependencies for the access gate, injected by Fx.
type AccessGateParams struct {
	fx.In

	Policy service.AccessPolicy
	Logger *slog.Logger
}

// NewAccessGate is the constructor for accessGate.
func NewAccessGate(params AccessGateParams) usecase.AccessGate {
	return &accessGate{
		policy: params.Policy,
		logger: params.Logger,
	}
}

func (g *accessGate) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

func (g *accessGate) Authorize(ctx context.Context, role entity.Role, op entity.Operation) error {
	if !role.IsAssignable() {
		g.log(ctx).Info("Access denied without profile", slog.String("operation", string(op)))

		return errors.Wrapf(domainerrors.ErrProfileMissing, "operation %s", op)
	}

	allowed, err := g.policy.Allowed(role, op)
	if err != nil {
		return errors.Wrap(err, "failed to evaluate access policy")
	}
	if !allowed {
		g.log(ctx).Info("Access denied", slog.String("role", role.String()), slog.String("operation", string(op)))

		return errors.Wrapf(domainerrors.ErrForbidden, "role %s may not %s", role, op)
	}

	return nil
}

// authorize gates op for principal. A nil principal is unauthenticated.
func authorize(ctx context.Context, gate usecase.AccessGate, principal *entity.Principal, op entity.Operation) error {
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}

	return gate.Authorize(ctx, principal.Role, op)
}
