package entity

import "time"

// DefaultWarehouse bodega por defecto cuando el caller no la indica.
const DefaultWarehouse = "main"

// InventoryRecord representa el stock de un producto.
// ProductID es una referencia blanda: el servicio de inventario nunca valida que el
// producto exista en el catálogo (los dos servicios se despliegan de forma independiente).
type InventoryRecord struct {
	ID        string
	ProductID string
	Quantity  int64
	Warehouse string
	UpdatedAt time.Time
}
