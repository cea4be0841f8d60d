package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegisterMovement *stock.RegisterMovementUseCase
	ListMovements    *stock.ListMovementsUseCase
	Summary          *stock.SummaryUseCase
	MovementsReport  MovementsReportGenerator
	ProductUC        *usecase.ProductUseCase
	UnitUC           *usecase.UnitUseCase
	SupplierUC       *usecase.SupplierUseCase
	ManufacturerUC   *usecase.ManufacturerUseCase
	JWTSecret        string
	Logger           *logger.Logger
}

// Router registra las rutas de la API. Todo lo que está bajo /api requiere
// Bearer Token; las escrituras de catálogo exigen rol admin, el motor de
// stock acepta admin y operador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	anyRole := RequireRole("admin", "operador")
	adminOnly := RequireRole("admin")

	// Motor de stock
	stockGroup := api.Group("/stock", anyRole)
	stockHandler := NewStockHandler(deps.RegisterMovement, deps.ListMovements, deps.Summary, deps.MovementsReport, deps.Logger)
	stockGroup.Post("/entry", stockHandler.Entry)
	stockGroup.Post("/entry/new", stockHandler.EntryNewItem)
	stockGroup.Post("/exit", stockHandler.Exit)
	stockGroup.Get("/movements", stockHandler.ListMovements)
	stockGroup.Get("/movements/report", stockHandler.MovementsReport)
	stockGroup.Get("/summary", stockHandler.Summary)

	// Catálogo de productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Logger)
	products.Get("/", anyRole, productHandler.List)
	products.Get("/:id", anyRole, productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Unidades y sectores
	units := api.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC, deps.Logger)
	units.Get("/", anyRole, unitHandler.List)
	units.Post("/", adminOnly, unitHandler.Create)
	units.Put("/:id", adminOnly, unitHandler.Update)
	units.Delete("/:id", adminOnly, unitHandler.Delete)
	units.Post("/:id/sectors", adminOnly, unitHandler.CreateSector)
	units.Put("/:id/sectors/:sectorId", adminOnly, unitHandler.UpdateSector)
	units.Delete("/:id/sectors/:sectorId", adminOnly, unitHandler.DeleteSector)

	// Proveedores
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Logger)
	suppliers.Get("/", anyRole, supplierHandler.List)
	suppliers.Get("/:id", anyRole, supplierHandler.GetByID)
	suppliers.Post("/", adminOnly, supplierHandler.Create)
	suppliers.Put("/:id", adminOnly, supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Fabricantes
	manufacturers := api.Group("/manufacturers")
	manufacturerHandler := NewManufacturerHandler(deps.ManufacturerUC, deps.Logger)
	manufacturers.Get("/", anyRole, manufacturerHandler.List)
	manufacturers.Get("/:id", anyRole, manufacturerHandler.GetByID)
	manufacturers.Post("/", adminOnly, manufacturerHandler.Create)
	manufacturers.Put("/:id", adminOnly, manufacturerHandler.Update)
	manufacturers.Delete("/:id", adminOnly, manufacturerHandler.Delete)
}
