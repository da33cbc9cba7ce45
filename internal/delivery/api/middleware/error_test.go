package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic/internal/delivery/api/response"
	deliverycontext "clinic/internal/delivery/context"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		role         entity.Role
		err          error
		wantStatus   int
		wantCode     string
		wantRedirect string
		wantDetails  bool
	}{
		{
			name:         "validation goes back to the form",
			path:         "/manager/patients",
			role:         entity.RoleManager,
			err:          domainerrors.ErrValidationFailed.WithDetails("age must be at least 0"),
			wantStatus:   http.StatusBadRequest,
			wantCode:     domainerrors.CodeValidationFailed,
			wantRedirect: "/manager/patients",
			wantDetails:  true,
		},
		{
			name:         "manager not found goes to own list",
			path:         "/manager/patients/x",
			role:         entity.RoleManager,
			err:          errors.Wrap(domainerrors.ErrPatientNotFound, "lookup"),
			wantStatus:   http.StatusNotFound,
			wantCode:     domainerrors.CodeNotFound,
			wantRedirect: "/manager/patients",
		},
		{
			name:         "doctor not found goes to system list",
			path:         "/doctor/patients/x/history",
			role:         entity.RoleDoctor,
			err:          domainerrors.ErrPatientNotFound,
			wantStatus:   http.StatusNotFound,
			wantCode:     domainerrors.CodeNotFound,
			wantRedirect: "/doctor/patients",
		},
		{
			name:         "unauthenticated goes to login",
			path:         "/manager/dashboard",
			err:          domainerrors.ErrUnauthenticated,
			wantStatus:   http.StatusUnauthorized,
			wantCode:     domainerrors.CodeUnauthenticated,
			wantRedirect: "/login",
		},
		{
			name:         "missing profile goes to account repair",
			path:         "/doctor/dashboard",
			role:         entity.RoleUnassigned,
			err:          domainerrors.ErrProfileMissing,
			wantStatus:   http.StatusForbidden,
			wantCode:     domainerrors.CodeProfileMissing,
			wantRedirect: "/account/profile",
		},
		{
			name:         "forbidden goes to own dashboard",
			path:         "/manager/dashboard",
			role:         entity.RoleDoctor,
			err:          domainerrors.ErrForbidden,
			wantStatus:   http.StatusForbidden,
			wantCode:     domainerrors.CodeForbidden,
			wantRedirect: "/doctor/dashboard",
		},
		{
			name:         "forbidden without principal goes home",
			path:         "/manager/dashboard",
			err:          domainerrors.ErrForbidden,
			wantStatus:   http.StatusForbidden,
			wantCode:     domainerrors.CodeForbidden,
			wantRedirect: "/",
		},
		{
			name:       "unknown error hides internals",
			path:       "/doctor/dashboard",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerrors.CodeInternalError,
		},
		{
			name:       "database failure hides internals",
			path:       "/doctor/dashboard",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("boom"), "select visits"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
		{
			name:       "unknown route",
			path:       "/nowhere",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   domainerrors.CodeNotFound,
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), rec)
			if tt.role != "" {
				deliverycontext.SetPrincipal(c, &entity.Principal{Role: tt.role})
			}

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantRedirect, body.Redirect)
			assert.Equal(t, body.Error.Message, body.Notice)
			assert.NotContains(t, rec.Body.String(), "connection refused")
			assert.NotContains(t, rec.Body.String(), "boom")
			assert.NotContains(t, rec.Body.String(), "select visits")
			if tt.wantDetails {
				assert.NotNil(t, body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}
