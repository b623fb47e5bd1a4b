package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// ImagePath es la ruta relativa del asset en el backend de almacenamiento activo
// (vacía si el producto no tiene imagen); la URL pública se resuelve al leer, nunca se persiste.
// ImagePath es inmutable después de la creación: el update parcial no la toca.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	ImagePath   string
	CreatedAt   time.Time // UTC, asignado una sola vez
}
