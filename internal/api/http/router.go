package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/laundry-service/internal/api/http/handlers"
	"github.com/spec-kit/laundry-service/internal/auth"
	"github.com/spec-kit/laundry-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	CSRF           *handlers.CSRFHandler
	Branches       *handlers.BranchesHandler
	Employees      *handlers.EmployeesHandler
	Machines       *handlers.MachinesHandler
	Push           *handlers.PushHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Role guards run before handlers, so a
// disallowed request never reaches a query.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Delete("/login", cfg.Auth.Logout)
	authGroup.Get("/csrf-token", cfg.AuthMiddleware.Handle, cfg.CSRF.Get)

	api := app.Group("/api", cfg.AuthMiddleware.Handle)

	api.Get("/branches", auth.RequireAuthenticated(), cfg.Branches.List)
	api.Get("/branches/:id", auth.RequireAuthenticated(), cfg.Branches.Get)

	managers := auth.RequireRole(domain.RoleSuperAdmin, domain.RoleOwner)
	api.Get("/employees", managers, cfg.Employees.List)
	api.Post("/employees", managers, cfg.Employees.Create)
	api.Put("/employees/:id", managers, cfg.Employees.Update)
	api.Delete("/employees/:id", managers, cfg.Employees.Delete)

	operators := auth.RequireRole(domain.RoleSuperAdmin, domain.RoleOwner, domain.RoleCollector)
	api.Get("/machines", operators, cfg.Machines.List)
	api.Put("/machines/:id", operators, cfg.Machines.Update)
	api.Post("/machines", managers, cfg.Machines.Create)
	api.Delete("/machines/:id", managers, cfg.Machines.Delete)

	api.Get("/push/public-key", auth.RequireAuthenticated(), cfg.Push.PublicKey)
}
