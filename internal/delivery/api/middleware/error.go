package middleware

import (
	"log/slog"
	"net/http"

	"clinic/internal/delivery/api/response"
	"clinic/internal/delivery/api/routes"
	deliverycontext "clinic/internal/delivery/context"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		var details any
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		} else if d := appErr.Details(); d != "" {
			details = d
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details, redirectFor(c, appErr.ErrorCode()))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		code := "HTTP_ERROR"
		if httpErr.Code == http.StatusNotFound {
			code = domainerrors.CodeNotFound
		}
		_ = response.Error(c, httpErr.Code, code, message, nil, "")

		return
	}

	m.logUnhandled(c, err)

	_ = response.InternalServerError(c, domainerrors.CodeInternalError, domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

// redirectFor picks the page the caller is sent to after a failure.
func redirectFor(c echo.Context, code string) string {
	role := entity.RoleUnassigned
	hasRole := false
	if principal, ok := deliverycontext.GetPrincipal(c); ok {
		role, hasRole = principal.Role, true
	}

	switch code {
	case domainerrors.CodeValidationFailed, domainerrors.CodeConflict,
		domainerrors.CodeInvalidCredentials, domainerrors.CodeTooManyRequests:
		return c.Request().URL.Path
	case domainerrors.CodeNotFound:
		return routes.PatientListFor(role)
	case domainerrors.CodeUnauthenticated:
		return routes.Login
	case domainerrors.CodeProfileMissing:
		return routes.AccountProfile
	case domainerrors.CodeForbidden:
		if !hasRole || !role.IsAssignable() {
			return routes.Welcome
		}

		return routes.DashboardFor(role)
	default:
		return ""
	}
}
