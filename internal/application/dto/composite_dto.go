package dto

// CompositeProductResponse vista compuesta de un producto: datos del catálogo más
// su stock (posiblemente el default sintetizado). Efímera, nunca se persiste.
type CompositeProductResponse struct {
	Product   ProductResponse   `json:"product"`
	Inventory InventoryResponse `json:"inventory"`
}

// AddProductForm formulario de alta de producto recibido por el frontend.
// Price viaja como string: el frontend reenvía la submission tal cual y la
// validación numérica es responsabilidad del catálogo.
type AddProductForm struct {
	Name        string
	Description string
	Price       string
	Image       *FileUpload
}

// UpdateStockForm formulario de actualización de stock recibido por el frontend.
type UpdateStockForm struct {
	Quantity  int64
	Warehouse string
}
