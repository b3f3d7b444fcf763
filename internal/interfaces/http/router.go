package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-desk/internal/application/analytics"
	"github.com/jhoicas/inventario-desk/internal/application/auth"
	"github.com/jhoicas/inventario-desk/internal/application/inventory"
	"github.com/jhoicas/inventario-desk/internal/application/reports"
	"github.com/jhoicas/inventario-desk/internal/application/usecase"
	"github.com/jhoicas/inventario-desk/internal/domain/entity"
	"github.com/jhoicas/inventario-desk/internal/domain/repository"
	"github.com/jhoicas/inventario-desk/pkg/ids"
)

// RouterDeps dependencias para el router del perfil de archivo.
type RouterDeps struct {
	Ledger      *inventory.Ledger
	AuthUC      *auth.UseCase
	UserUC      *usecase.UserUseCase
	SubsUC      *usecase.SubscriptionUseCase
	DashboardUC *analytics.DashboardUseCase
	ExportUC    *reports.ExportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API principal.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Put("/auth/password", authHandler.UpdatePassword)

	// Products: lectura para todos, escritura solo admin
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Ledger)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Warehouses
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.Ledger)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", adminOnly, warehouseHandler.Create)

	// Inventory: movimientos, existencias y stock bajo
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Ledger)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/stock", inventoryHandler.GetStock)
	invGroup.Get("/low-stock", inventoryHandler.LowStock)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Subscriptions
	subsHandler := NewSubscriptionHandler(deps.SubsUC)
	protected.Get("/plans", subsHandler.Plans)
	protected.Get("/subscription", subsHandler.Current)
	protected.Post("/subscription/checkout", subsHandler.Checkout)
	protected.Post("/subscription/cancel", subsHandler.Cancel)

	// Reports (exportaciones)
	reportsHandler := NewReportsHandler(deps.ExportUC)
	protected.Get("/reports/movements.csv", reportsHandler.MovementsCSV)
	protected.Get("/reports/movements.pdf", reportsHandler.MovementsPDF)

	// Admin: respaldo y restauración (solo admin)
	adminGroup := protected.Group("/admin", adminOnly)
	backupHandler := NewBackupHandler(deps.Ledger)
	adminGroup.Post("/backup", backupHandler.Backup)
	adminGroup.Post("/restore", backupHandler.Restore)
}

// WarehouseRouter registra las rutas del perfil warehouse-api (PostgreSQL).
func WarehouseRouter(app *fiber.App, repo repository.WarehouseRepository, gen ids.Generator) {
	api := app.Group("/api")

	handler := NewSQLWarehouseHandler(repo, gen)
	warehouses := api.Group("/warehouses")
	warehouses.Get("/", handler.List)
	warehouses.Get("/:id", handler.GetByID)
	warehouses.Post("/", handler.Create)
	warehouses.Put("/:id", handler.Update)
	warehouses.Delete("/:id", handler.Delete)
}
