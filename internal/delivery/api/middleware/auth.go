package middleware

import (
	"strings"

	"clinic/config"
	deliverycontext "clinic/internal/delivery/context"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the session of the caller and enforces role groups.
type AuthMiddleware struct {
	accounts   usecase.AccountUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accounts usecase.AccountUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{accounts: accounts, cookieName: cfg.Auth.CookieName}
}

// Authenticate loads the principal from the session cookie or a bearer token.
// The role is resolved here once and carried for the rest of the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.tokenFrom(c)
		if token == "" {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "no session token")
		}

		principal, err := m.accounts.Authenticate(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// RequireRole admits only principals holding role. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return errors.WithStack(domainerrors.ErrUnauthenticated)
			}

			if !principal.Role.IsAssignable() {
				return errors.Wrapf(domainerrors.ErrProfileMissing, "user %s", principal.UserID)
			}

			if principal.Role != role {
				return errors.Wrapf(domainerrors.ErrForbidden, "role %s cannot enter %s pages", principal.Role, role)
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) tokenFrom(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, bearerPrefix); ok {
		return strings.TrimSpace(token)
	}

	return ""
}
