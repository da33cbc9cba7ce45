package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"clinic/config"
	"clinic/internal/delivery/api/response"
	"clinic/internal/delivery/api/routes"
	deliverycontext "clinic/internal/delivery/context"
	"clinic/internal/domain/entity"
	"clinic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	Accounts usecase.AccountUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// AccountHandler serves registration, login, logout and account repair.
type AccountHandler struct {
	accounts     usecase.AccountUsecase
	cookieName   string
	cookieSecure bool
	logger       *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accounts:     params.Accounts,
		cookieName:   params.Config.Auth.CookieName,
		cookieSecure: params.Config.Auth.CookieSecure,
		logger:       params.Logger,
	}
}

// Register creates an account together with its role profile.
func (h *AccountHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := bind(c, &input); err != nil {
		return err
	}

	user, err := h.accounts.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithOutcome(c, http.StatusCreated, toUserResponse(user), response.Outcome{
		Notice:   "Registration successful! Please login.",
		Redirect: routes.Login,
	})
}

// Login opens a session, sets the session cookie and points the caller at
// their dashboard, or at account repair when no role is assigned.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bind(c, &input); err != nil {
		return err
	}

	output, err := h.accounts.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.Token, output.ExpiresAt))

	notice := fmt.Sprintf("Welcome back, %s!", output.Principal.Username)
	if output.Principal.Role == entity.RoleUnassigned {
		notice = "User profile not found. Please complete your profile."
	}

	return response.SuccessWithOutcome(c, http.StatusOK, LoginResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		User:      toPrincipalResponse(output.Principal),
	}, response.Outcome{
		Notice:   notice,
		Redirect: routes.DashboardFor(output.Principal.Role),
	})
}

// Logout ends the current session and clears the cookie.
func (h *AccountHandler) Logout(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	if err := h.accounts.Logout(c.Request().Context(), principal); err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie("", time.Unix(0, 0)))

	return response.SuccessWithOutcome(c, http.StatusOK, nil, response.Outcome{
		Notice:   "You have been logged out.",
		Redirect: routes.Login,
	})
}

// CompleteProfile assigns a role to an account that has none.
func (h *AccountHandler) CompleteProfile(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var input usecase.CompleteProfileInput
	if err := bind(c, &input); err != nil {
		return err
	}

	updated, err := h.accounts.CompleteProfile(c.Request().Context(), principal, &input)
	if err != nil {
		return errors.WithStack(err)
	}
	deliverycontext.SetPrincipal(c, updated)

	return response.SuccessWithOutcome(c, http.StatusCreated, toPrincipalResponse(updated), response.Outcome{
		Notice:   "Profile completed.",
		Redirect: routes.DashboardFor(updated.Role),
	})
}

func (h *AccountHandler) sessionCookie(token string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		cookie.MaxAge = -1
	}

	return cookie
}
