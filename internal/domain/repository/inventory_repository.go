package repository

import "github.com/duplo-darren/ecomm-workshopv2/internal/domain/entity"

// InventoryRepository puerto de persistencia para registros de stock.
// No expone delete: el inventario nunca se borra desde la capa de agregación.
type InventoryRepository interface {
	Create(record *entity.InventoryRecord) error
	// GetByProductID devuelve nil, nil si no hay registro para ese producto.
	// La síntesis del default (quantity 0, warehouse "main") es responsabilidad
	// del caso de uso, no del repositorio.
	GetByProductID(productID string) (*entity.InventoryRecord, error)
	List() ([]*entity.InventoryRecord, error)
	Update(record *entity.InventoryRecord) error
}
