package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/crm-service/internal/api/http/handlers"
	"github.com/spec-kit/crm-service/internal/auth"
	"github.com/spec-kit/crm-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Customers      *handlers.CustomersHandler
	Leads          *handlers.LeadsHandler
	Sales          *handlers.SalesHandler
	Tasks          *handlers.TasksHandler
	Dashboard      *handlers.DashboardHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Every route under /api except the auth
// entry points requires a valid access token; role guards narrow access
// further per resource.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/register", cfg.Auth.Register)
	api.Post("/login", cfg.Auth.Login)
	api.Post("/refresh-token", cfg.Auth.Refresh)

	protected := api.Group("", cfg.AuthMiddleware.Handle)

	// Profile lookup is open to every authenticated caller and must be
	// registered before the admin-only /users guard.
	protected.Get("/users/me", cfg.Auth.Me)

	users := protected.Group("/users", auth.RequireRole(domain.RoleAdmin))
	users.Get("", cfg.Users.List)
	users.Post("", cfg.Users.Create)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)

	salesRoles := auth.RequireRole(domain.RoleAdmin, domain.RoleManager, domain.RoleSales)

	customers := protected.Group("/customers", salesRoles)
	customers.Get("", cfg.Customers.List)
	customers.Post("", cfg.Customers.Create)
	customers.Get("/:id", cfg.Customers.Get)
	customers.Put("/:id", cfg.Customers.Update)
	customers.Delete("/:id", cfg.Customers.Delete)

	leads := protected.Group("/leads", salesRoles)
	leads.Get("", cfg.Leads.List)
	leads.Post("", cfg.Leads.Create)
	leads.Get("/status/:status", cfg.Leads.ListByStatus)
	leads.Get("/:id", cfg.Leads.Get)
	leads.Put("/:id", cfg.Leads.Update)
	leads.Patch("/:id/status", cfg.Leads.UpdateStatus)
	leads.Delete("/:id", cfg.Leads.Delete)

	sales := protected.Group("/sales", salesRoles)
	sales.Get("", cfg.Sales.List)
	sales.Post("", cfg.Sales.Create)
	sales.Get("/:id", cfg.Sales.Get)
	sales.Put("/:id", cfg.Sales.Update)
	sales.Delete("/:id", cfg.Sales.Delete)

	anyRole := auth.RequireRole(domain.RoleAdmin, domain.RoleManager, domain.RoleSales, domain.RoleUser)

	tasks := protected.Group("/tasks", anyRole)
	tasks.Get("", cfg.Tasks.List)
	tasks.Post("", cfg.Tasks.Create)
	tasks.Get("/:id", cfg.Tasks.Get)
	tasks.Put("/:id", cfg.Tasks.Update)
	tasks.Patch("/:id/status", cfg.Tasks.UpdateStatus)
	tasks.Delete("/:id", cfg.Tasks.Delete)

	protected.Get("/dashboard", anyRole, cfg.Dashboard.Summary)
}
