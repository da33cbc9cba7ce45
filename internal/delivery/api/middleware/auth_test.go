package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic/config"
	deliverycontext "clinic/internal/delivery/context"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	mockUsecase "clinic/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockUsecase.MockAccountUsecase) {
	accounts := mockUsecase.NewMockAccountUsecase(t)
	cfg := &config.Config{Auth: &config.AuthConfig{CookieName: "clinic_session"}}

	return NewAuthMiddleware(accounts, cfg), accounts
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	principal := &entity.Principal{UserID: uuid.New(), Username: "alice", Role: entity.RoleManager}

	t.Run("cookie", func(t *testing.T) {
		m, accounts := newAuthMiddleware(t)
		accounts.EXPECT().Authenticate(mock.Anything, "cookie-token").Return(principal, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "clinic_session", Value: "cookie-token"})
		c := echo.New().NewContext(req, httptest.NewRecorder())

		require.NoError(t, m.Authenticate(okHandler)(c))
		got, ok := deliverycontext.GetPrincipal(c)
		require.True(t, ok)
		assert.Equal(t, principal, got)
	})

	t.Run("bearer header", func(t *testing.T) {
		m, accounts := newAuthMiddleware(t)
		accounts.EXPECT().Authenticate(mock.Anything, "header-token").Return(principal, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
		c := echo.New().NewContext(req, httptest.NewRecorder())

		require.NoError(t, m.Authenticate(okHandler)(c))
	})

	t.Run("no token", func(t *testing.T) {
		m, _ := newAuthMiddleware(t)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic abc")
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := m.Authenticate(okHandler)(c)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("rejected token", func(t *testing.T) {
		m, accounts := newAuthMiddleware(t)
		accounts.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrUnauthenticated).Once()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer stale")
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := m.Authenticate(okHandler)(c)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
		_, ok := deliverycontext.GetPrincipal(c)
		assert.False(t, ok)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name    string
		role    entity.Role
		wantErr error
	}{
		{name: "matching role", role: entity.RoleManager},
		{name: "other role", role: entity.RoleDoctor, wantErr: domainerrors.ErrForbidden},
		{name: "no profile", role: entity.RoleUnassigned, wantErr: domainerrors.ErrProfileMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newAuthMiddleware(t)
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			deliverycontext.SetPrincipal(c, &entity.Principal{UserID: uuid.New(), Role: tt.role})

			err := m.RequireRole(entity.RoleManager)(okHandler)(c)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	t.Run("missing principal", func(t *testing.T) {
		m, _ := newAuthMiddleware(t)
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		err := m.RequireRole(entity.RoleManager)(okHandler)(c)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})
}
