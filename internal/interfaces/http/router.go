package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	ProductUC   *usecase.ProductUseCase
	CompanyUC   *usecase.CompanyUseCase
	WarehouseUC *usecase.WarehouseUseCase
	SupplierUC  *usecase.SupplierUseCase
	BundleUC    *usecase.BundleUseCase
	InventoryUC *inventory.UseCase
	AlertEngine *alerts.Engine
	Log         zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "StockFlow Inventory Management API"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	bundleHandler := NewBundleHandler(deps.BundleUC, deps.Log)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/components", bundleHandler.Components)
	products.Post("/:id/components", bundleHandler.AddComponent)

	// Companies, sus bodegas y alertas
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Log)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.Log)
	alertHandler := NewAlertHandler(deps.AlertEngine, deps.Log)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Get("/:id/warehouses", warehouseHandler.ListByCompany)
	companies.Post("/:id/warehouses", warehouseHandler.Create)
	companies.Get("/:id/alerts/low-stock", alertHandler.LowStock)

	// Warehouses
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Log)
	warehouses := api.Group("/warehouses")
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Get("/:id/inventory", inventoryHandler.ListByWarehouse)

	// Inventory
	inv := api.Group("/inventory")
	inv.Post("/", inventoryHandler.Create)
	inv.Post("/:id/adjustments", inventoryHandler.Adjust)
	inv.Get("/:id/history", inventoryHandler.History)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Log)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
}
