package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC      *usecase.WarehouseUseCase
	SupplierUC       *usecase.SupplierUseCase
	StockUC          *usecase.StockUseCase
	VariantSearchUC  *usecase.VariantSearchUseCase
	CreateMovement   *inventory.CreateMovementUseCase
	CompleteMovement *inventory.CompleteMovementUseCase
	CancelMovement   *inventory.CancelMovementUseCase
	QueryMovements   *inventory.QueryMovementsUseCase
	JWTSecret        string
}

// Router registra las rutas de la API. Todo el módulo de inventario exige
// Bearer Token y rol de administrador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (Bearer Token + rol admin)
	inv := api.Group("/inventory", AuthMiddleware(deps.JWTSecret), RequireRole(RoleAdmin))

	// Warehouses
	warehouses := inv.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Deactivate)

	// Suppliers
	suppliers := inv.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Deactivate)

	// Stock (libro de inventario)
	stock := inv.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Get("/low", stockHandler.LowStock)
	stock.Get("/stats", stockHandler.Stats)
	stock.Put("/:warehouseId/:variantId", stockHandler.Adjust)

	// Movements (motor)
	movements := inv.Group("/movements")
	movementHandler := NewMovementHandler(deps.CreateMovement, deps.CompleteMovement, deps.CancelMovement, deps.QueryMovements)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Create)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id/complete", movementHandler.Complete)
	movements.Put("/:id/cancel", movementHandler.Cancel)

	// Variants (búsqueda para formularios)
	variantHandler := NewVariantHandler(deps.VariantSearchUC)
	inv.Get("/variants/search", variantHandler.Search)
}
