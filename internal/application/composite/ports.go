package composite

import (
	"context"

	"github.com/duplo-darren/ecomm-workshopv2/internal/application/dto"
)

// CatalogClient puerto hacia el servicio de catálogo.
// GetProduct devuelve domain.ErrNotFound si el producto no existe; cualquier otro
// fallo (red, timeout, 5xx) llega como error de transporte sin disfrazar.
type CatalogClient interface {
	ListProducts(ctx context.Context) ([]dto.ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error)
	CreateProduct(ctx context.Context, form dto.AddProductForm) (*dto.ProductResponse, error)
}

// InventoryClient puerto hacia el servicio de inventario.
// GetInventory nunca distingue "sin registro": el propio servicio de inventario ya
// sintetiza el default, así que aquí ausencia y presencia se ven igual.
type InventoryClient interface {
	GetInventory(ctx context.Context, productID string) (*dto.InventoryResponse, error)
	UpdateInventory(ctx context.Context, productID string, in dto.UpsertInventoryRequest) (*dto.InventoryResponse, error)
}
