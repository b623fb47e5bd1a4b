package repository

import "github.com/duplo-darren/ecomm-workshopv2/internal/domain/entity"

// ProductRepository puerto de persistencia para productos del catálogo.
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByID devuelve nil, nil si el producto no existe.
	GetByID(id string) (*entity.Product, error)
	// List devuelve todos los productos ordenados por fecha de creación descendente.
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Delete devuelve false si no había fila que borrar.
	Delete(id string) (bool, error)
}
