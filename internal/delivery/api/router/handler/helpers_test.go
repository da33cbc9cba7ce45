package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic/internal/delivery/api/middleware"
	"clinic/internal/delivery/api/validator"
	deliverycontext "clinic/internal/delivery/context"
	"clinic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data     json.RawMessage `json:"data"`
	Notice   string          `json:"notice"`
	Redirect string          `json:"redirect"`
	Error    *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

// newTestEcho mirrors the production error handling and validation. When
// principal is non-nil it is installed as if the auth middleware had run.
func newTestEcho(principal *entity.Principal) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
	if principal != nil {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				deliverycontext.SetPrincipal(c, principal)

				return next(c)
			}
		})
	}

	return e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func newPrincipal(role entity.Role) *entity.Principal {
	return &entity.Principal{
		UserID:    uuid.New(),
		Username:  string(role) + "-user",
		Role:      role,
		SessionID: uuid.New(),
	}
}

func intPtr(v int) *int { return &v }

