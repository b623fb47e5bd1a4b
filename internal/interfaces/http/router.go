package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/duplo-darren/ecomm-workshopv2/internal/application/composite"
	"github.com/duplo-darren/ecomm-workshopv2/internal/application/usecase"
)

// CatalogRouterDeps dependencias del router del catálogo.
type CatalogRouterDeps struct {
	ProductUC *usecase.ProductUseCase
	DB        Pinger
}

// CatalogRouter registra las rutas del servicio de catálogo.
func CatalogRouter(app *fiber.App, deps CatalogRouterDeps) {
	app.Get("/health", HealthCheck(deps.DB))

	products := app.Group("/api/products")
	handler := NewProductHandler(deps.ProductUC)
	products.Get("/", handler.List)
	products.Post("/", handler.Create)
	products.Get("/:id", handler.GetByID)
	products.Put("/:id", handler.Update)
	products.Delete("/:id", handler.Delete)
}

// InventoryRouterDeps dependencias del router de inventario.
type InventoryRouterDeps struct {
	InventoryUC *usecase.InventoryUseCase
	DB          Pinger
}

// InventoryRouter registra las rutas del servicio de inventario.
func InventoryRouter(app *fiber.App, deps InventoryRouterDeps) {
	app.Get("/health", HealthCheck(deps.DB))

	inv := app.Group("/api/inventory")
	handler := NewInventoryHandler(deps.InventoryUC)
	inv.Get("/", handler.List)
	inv.Get("/:product_id", handler.GetByProductID)
	inv.Put("/:product_id", handler.Upsert)
}

// FrontendRouterDeps dependencias del router del frontend.
type FrontendRouterDeps struct {
	CompositeUC *composite.UseCase
}

// FrontendRouter registra las rutas del frontend (vistas + formularios).
func FrontendRouter(app *fiber.App, deps FrontendRouterDeps) {
	app.Get("/health", HealthOK)

	handler := NewFrontendHandler(deps.CompositeUC)
	app.Get("/", handler.Index)
	app.Get("/admin", handler.Admin)
	app.Post("/admin/add-product", handler.AddProduct)
	app.Get("/products/:id", handler.ProductDetail)
	app.Post("/products/:id/inventory", handler.UpdateStock)
}
