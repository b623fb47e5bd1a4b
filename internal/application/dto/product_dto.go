package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto (formulario multipart).
// Image es opcional; si está presente se persiste antes de escribir el registro.
type CreateProductRequest struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Image       *FileUpload
}

// UpdateProductRequest entrada para actualizar un producto (JSON parcial).
// Campos nil quedan sin tocar. La imagen no se puede reemplazar por esta vía.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto. ImageURL se resuelve al leer, no se almacena.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImagePath   string          `json:"image_path"`
	ImageURL    string          `json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
}
