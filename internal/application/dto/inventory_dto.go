package dto

import "time"

// UpsertInventoryRequest entrada del upsert de stock. Ambos campos son opcionales:
// los ausentes se dejan como están (o toman el default si el registro no existía).
type UpsertInventoryRequest struct {
	Quantity  *int64  `json:"quantity,omitempty"`
	Warehouse *string `json:"warehouse,omitempty"`
}

// InventoryResponse salida de un registro de stock. Cuando el registro no existe
// se sintetiza un default con solo product_id, quantity y warehouse (sin id ni
// updated_at), igual que si el producto siempre hubiera tenido stock cero.
type InventoryResponse struct {
	ID        string     `json:"id,omitempty"`
	ProductID string     `json:"product_id"`
	Quantity  int64      `json:"quantity"`
	Warehouse string     `json:"warehouse"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
