package context

import (
	"clinic/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyPrincipal is the key for storing the authenticated principal in echo.Context.
const KeyPrincipal ContextKey = "principal"

// SetPrincipal stores the authenticated principal for the rest of the request.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(string(KeyPrincipal), principal)
}

// GetPrincipal returns the principal set by the auth middleware, if any.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	principal, ok := c.Get(string(KeyPrincipal)).(*entity.Principal)
	if !ok || principal == nil {
		return nil, false
	}

	return principal, true
}
