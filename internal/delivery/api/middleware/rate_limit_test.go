package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic/config"
	domainerrors "clinic/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRateLimiter(rps float64, burst int, clock *time.Time) *RateLimitMiddleware {
	m := NewRateLimitMiddleware(&config.Config{RateLimit: &config.RateLimitConfig{RequestsPerSecond: rps, Burst: burst}})
	m.now = func() time.Time { return *clock }

	return m
}

func requestFrom(ip string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":5555"

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestRateLimitMiddleware_Limit(t *testing.T) {
	clock := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	m := newTestRateLimiter(1, 2, &clock)
	handler := m.Limit(okHandler)

	require.NoError(t, handler(requestFrom("10.0.0.1")))
	require.NoError(t, handler(requestFrom("10.0.0.1")))

	err := handler(requestFrom("10.0.0.1"))
	assert.True(t, errors.Is(err, domainerrors.ErrTooManyRequests))

	// other clients have their own budget
	assert.NoError(t, handler(requestFrom("10.0.0.2")))

	clock = clock.Add(time.Second)
	assert.NoError(t, handler(requestFrom("10.0.0.1")))
}

func TestRateLimitMiddleware_SweepsIdleClients(t *testing.T) {
	clock := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	m := newTestRateLimiter(1, 1, &clock)

	m.get("10.0.0.1")
	m.get("10.0.0.2")
	require.Len(t, m.clients, 2)

	clock = clock.Add(rateLimitIdleAfter + time.Second)
	m.get("10.0.0.2")

	assert.Len(t, m.clients, 1)
	assert.Contains(t, m.clients, "10.0.0.2")
}
