package middleware

import (
	"sync"
	"time"

	"clinic/config"
	domainerrors "clinic/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	rateLimitSweepEvery = time.Minute
	rateLimitIdleAfter  = 3 * time.Minute
)

type client struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimitMiddleware throttles credential endpoints per client IP.
type RateLimitMiddleware struct {
	mu        sync.Mutex
	clients   map[string]*client
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimitMiddleware creates a limiter from the rate limit config.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		clients: make(map[string]*client),
		limit:   rate.Limit(cfg.RateLimit.RequestsPerSecond),
		burst:   cfg.RateLimit.Burst,
		now:     time.Now,
	}
}

// Limit rejects requests over the per-IP budget with TOO_MANY_REQUESTS.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ip := c.RealIP()
		if !m.get(ip).AllowN(m.now(), 1) {
			return errors.Wrapf(domainerrors.ErrTooManyRequests, "client %s", ip)
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) get(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) >= rateLimitSweepEvery {
		for key, c := range m.clients {
			if now.Sub(c.seen) > rateLimitIdleAfter {
				delete(m.clients, key)
			}
		}
		m.lastSweep = now
	}

	if c, ok := m.clients[ip]; ok {
		c.seen = now

		return c.lim
	}

	lim := rate.NewLimiter(m.limit, m.burst)
	m.clients[ip] = &client{lim: lim, seen: now}

	return lim
}
