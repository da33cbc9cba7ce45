package handler

import (
	"net/http"
	"testing"

	"clinic/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageHandler(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "clinic"
	h := NewPageHandler(cfg)

	e := newTestEcho(nil)
	e.GET("/", h.Welcome)
	e.GET("/health", HealthCheck)

	rec := doRequest(e, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"service":"clinic"`)
	assert.Contains(t, rec.Body.String(), `"login":"/login"`)

	rec = doRequest(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decodeEnvelope(t, rec).Data))
}
