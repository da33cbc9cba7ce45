package api

import (
	"testing"

	"clinic/config"

	"github.com/stretchr/testify/assert"
)

func TestCorsConfig(t *testing.T) {
	t.Run("no origins keeps the anonymous default", func(t *testing.T) {
		cfg := &config.Config{}

		got := corsConfig(cfg)

		assert.Equal(t, []string{"*"}, got.AllowOrigins)
		assert.False(t, got.AllowCredentials)
		assert.Equal(t, []string{"X-Request-Id"}, got.ExposeHeaders)
	})

	t.Run("configured origins may send the session cookie", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.HTTP.AllowedOrigins = []string{"https://clinic.example.com"}

		got := corsConfig(cfg)

		assert.Equal(t, []string{"https://clinic.example.com"}, got.AllowOrigins)
		assert.True(t, got.AllowCredentials)
	})
}
