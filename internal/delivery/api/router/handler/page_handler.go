package handler

import (
	"net/http"

	"clinic/config"
	"clinic/internal/delivery/api/response"
	"clinic/internal/delivery/api/routes"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the public pages.
type PageHandler struct {
	serviceName string
}

// NewPageHandler is the constructor for PageHandler.
func NewPageHandler(cfg *config.Config) *PageHandler {
	return &PageHandler{serviceName: cfg.Env.ServiceName}
}

// Welcome is the public landing page.
func (h *PageHandler) Welcome(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"service": h.serviceName,
		"links": map[string]string{
			"register": routes.Register,
			"login":    routes.Login,
		},
	})
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
