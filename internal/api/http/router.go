package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pharma-inventory/internal/api/http/handlers"
	"github.com/spec-kit/pharma-inventory/internal/auth"
	"github.com/spec-kit/pharma-inventory/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Facilities     *handlers.FacilitiesHandler
	Medications    *handlers.MedicationsHandler
	Inventory      *handlers.InventoryHandler
	Requisitions   *handlers.RequisitionsHandler
	PurchaseOrders *handlers.PurchaseOrdersHandler
	Transfers      *handlers.TransfersHandler
	Vendors        *handlers.VendorsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Reads require authentication only;
// mutations are role-guarded at the route level, with self-or-admin checks
// handled inline by the user handlers.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")
	api.Post("/login", cfg.Auth.Login)

	users := api.Group("/users", cfg.AuthMiddleware.Handle)
	users.Post("/", auth.RequireAdmin(), cfg.Users.Create)
	users.Get("/", cfg.Users.List)
	users.Get("/:username", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", auth.RequireAdmin(), cfg.Users.Deactivate)
	users.Put("/:id/password", cfg.Users.UpdatePassword)
	users.Put("/:id/activate", auth.RequireAdmin(), cfg.Users.Activate)
	users.Put("/:id/deactivate", auth.RequireAdmin(), cfg.Users.Deactivate)

	adminWrite := auth.RequireAdmin()
	staffWrite := auth.RequireRole(domain.RoleAdmin, domain.RoleFacilityStaff)

	facilities := api.Group("/facilities", cfg.AuthMiddleware.Handle)
	facilities.Get("/", cfg.Facilities.List)
	facilities.Get("/:id", cfg.Facilities.Get)
	facilities.Post("/", adminWrite, cfg.Facilities.Create)
	facilities.Put("/:id", adminWrite, cfg.Facilities.Update)
	facilities.Delete("/:id", adminWrite, cfg.Facilities.Delete)

	medications := api.Group("/medications", cfg.AuthMiddleware.Handle)
	medications.Get("/", cfg.Medications.List)
	medications.Get("/:id", cfg.Medications.Get)
	medications.Post("/", adminWrite, cfg.Medications.Create)
	medications.Put("/:id", adminWrite, cfg.Medications.Update)
	medications.Delete("/:id", adminWrite, cfg.Medications.Delete)

	inventory := api.Group("/inventory", cfg.AuthMiddleware.Handle)
	inventory.Get("/", cfg.Inventory.List)
	inventory.Get("/:id", cfg.Inventory.Get)
	inventory.Post("/", staffWrite, cfg.Inventory.Create)
	inventory.Put("/:id", staffWrite, cfg.Inventory.Update)
	inventory.Delete("/:id", adminWrite, cfg.Inventory.Delete)

	requisitions := api.Group("/requisitions", cfg.AuthMiddleware.Handle)
	requisitions.Get("/", cfg.Requisitions.List)
	requisitions.Get("/:id", cfg.Requisitions.Get)
	requisitions.Post("/", staffWrite, cfg.Requisitions.Create)
	requisitions.Put("/:id", staffWrite, cfg.Requisitions.Update)
	requisitions.Delete("/:id", adminWrite, cfg.Requisitions.Delete)

	purchaseOrders := api.Group("/purchase-orders", cfg.AuthMiddleware.Handle)
	purchaseOrders.Get("/", cfg.PurchaseOrders.List)
	purchaseOrders.Get("/:id", cfg.PurchaseOrders.Get)
	purchaseOrders.Post("/", adminWrite, cfg.PurchaseOrders.Create)
	purchaseOrders.Put("/:id", adminWrite, cfg.PurchaseOrders.Update)
	purchaseOrders.Delete("/:id", adminWrite, cfg.PurchaseOrders.Delete)

	transfers := api.Group("/transfers", cfg.AuthMiddleware.Handle)
	transfers.Get("/", cfg.Transfers.List)
	transfers.Get("/:id", cfg.Transfers.Get)
	transfers.Post("/", staffWrite, cfg.Transfers.Create)
	transfers.Put("/:id", staffWrite, cfg.Transfers.Update)
	transfers.Delete("/:id", adminWrite, cfg.Transfers.Delete)

	vendors := api.Group("/vendors", cfg.AuthMiddleware.Handle)
	vendors.Get("/", cfg.Vendors.List)
	vendors.Get("/:id", cfg.Vendors.Get)
	vendors.Post("/", adminWrite, cfg.Vendors.Create)
	vendors.Put("/:id", adminWrite, cfg.Vendors.Update)
	vendors.Delete("/:id", adminWrite, cfg.Vendors.Delete)
}
