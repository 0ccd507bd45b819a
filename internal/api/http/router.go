package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/repairshop-service/internal/api/http/handlers"
	"github.com/spec-kit/repairshop-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Customers      *handlers.CustomersHandler
	Tickets        *handlers.TicketsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireStaff())
	protected.Post("/auth/password/change", cfg.Auth.ChangePassword)

	protected.Get("/customers", cfg.Customers.Search)
	protected.Get("/customers/:id", cfg.Customers.Get)
	protected.Post("/customers", cfg.Customers.Save)

	protected.Get("/tickets", cfg.Tickets.Search)
	protected.Get("/tickets/open", cfg.Tickets.List)
	protected.Get("/tickets/:id", cfg.Tickets.Get)
	protected.Post("/tickets", cfg.Tickets.Save)

	protected.Get("/staff/techs", auth.RequireManager(), cfg.Auth.ListTechs)
}
