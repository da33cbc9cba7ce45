// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"clinic/internal/delivery/api/middleware"
	"clinic/internal/delivery/api/router/handler"
	"clinic/internal/delivery/api/routes"
	"clinic/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PageHandler         *handler.PageHandler
	AccountHandler      *handler.AccountHandler
	ManagerHandler      *handler.ManagerHandler
	DoctorHandler       *handler.DoctorHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	pageHandler    *handler.PageHandler
	accountHandler *handler.AccountHandler
	managerHandler *handler.ManagerHandler
	doctorHandler  *handler.DoctorHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pageHandler:    params.PageHandler,
		accountHandler: params.AccountHandler,
		managerHandler: params.ManagerHandler,
		doctorHandler:  params.DoctorHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimiter:    params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the page routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET(routes.Welcome, r.pageHandler.Welcome)
	e.GET(routes.Health, handler.HealthCheck)

	// Credential endpoints are throttled per client IP
	e.POST(routes.Register, r.accountHandler.Register, r.rateLimiter.Limit)
	e.POST(routes.Login, r.accountHandler.Login, r.rateLimiter.Limit)

	// Any logged-in account, including one without a role
	e.POST(routes.Logout, r.accountHandler.Logout, r.authMiddleware.Authenticate)
	e.POST(routes.AccountProfile, r.accountHandler.CompleteProfile, r.authMiddleware.Authenticate)

	managerGroup := e.Group("/manager")
	managerGroup.Use(r.authMiddleware.Authenticate)
	managerGroup.Use(r.authMiddleware.RequireRole(entity.RoleManager))
	{
		managerGroup.GET("/dashboard", r.managerHandler.Dashboard)
		managerGroup.POST("/patients", r.managerHandler.CreatePatient)
		managerGroup.GET("/patients", r.managerHandler.ListPatients)
		managerGroup.GET("/patients/:id", r.managerHandler.GetPatient)
		managerGroup.DELETE("/patients/:id", r.managerHandler.DeletePatient)
	}

	doctorGroup := e.Group("/doctor")
	doctorGroup.Use(r.authMiddleware.Authenticate)
	doctorGroup.Use(r.authMiddleware.RequireRole(entity.RoleDoctor))
	{
		doctorGroup.GET("/dashboard", r.doctorHandler.Dashboard)
		doctorGroup.GET("/patients", r.doctorHandler.ListPatients)
		doctorGroup.POST("/patients/:id/visits", r.doctorHandler.AddVisit)
		doctorGroup.GET("/patients/:id/history", r.doctorHandler.History)
	}
}
