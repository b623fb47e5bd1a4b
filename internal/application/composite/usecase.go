package composite

import (
	"context"
	"fmt"
	"sync"

	"github.com/duplo-darren/ecomm-workshopv2/internal/application/dto"
)

// UseCase agrega catálogo e inventario en una vista compuesta por producto.
// Sin estado propio: cada operación vive lo que dura la request que la provocó.
type UseCase struct {
	catalog   CatalogClient
	inventory InventoryClient
}

// NewUseCase construye el agregador.
func NewUseCase(catalog CatalogClient, inventory InventoryClient) *UseCase {
	return &UseCase{catalog: catalog, inventory: inventory}
}

// ListProducts devuelve el listado del catálogo sin tocar inventario: el stock solo
// se junta en la vista de detalle, nunca con un fan-out O(n) sobre el listado.
func (uc *UseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	return uc.catalog.ListProducts(ctx)
}

// ProductDetail arma la vista compuesta lanzando las dos llamadas en paralelo.
// El catálogo manda sobre la existencia del producto: su fallo (incluido NotFound)
// tumba la operación completa. Un fallo de transporte de inventario también la tumba:
// la indisponibilidad del backend jamás se degrada a un default silencioso — solo la
// ausencia genuina tiene default, y esa la resuelve el propio servicio de inventario.
func (uc *UseCase) ProductDetail(ctx context.Context, productID string) (*dto.CompositeProductResponse, error) {
	var (
		wg      sync.WaitGroup
		product *dto.ProductResponse
		stock   *dto.InventoryResponse
		catErr  error
		invErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		product, catErr = uc.catalog.GetProduct(ctx, productID)
	}()
	go func() {
		defer wg.Done()
		stock, invErr = uc.inventory.GetInventory(ctx, productID)
	}()
	wg.Wait()

	if catErr != nil {
		return nil, fmt.Errorf("catálogo: %w", catErr)
	}
	if invErr != nil {
		return nil, fmt.Errorf("inventario: %w", invErr)
	}

	return &dto.CompositeProductResponse{
		Product:   *product,
		Inventory: *stock,
	}, nil
}

// AddProduct reenvía la submission de alta al catálogo tal cual llegó
// (la imagen pasa como bytes opacos; la validación es del catálogo).
func (uc *UseCase) AddProduct(ctx context.Context, form dto.AddProductForm) error {
	_, err := uc.catalog.CreateProduct(ctx, form)
	return err
}

// UpdateStock reenvía el formulario de stock al upsert del inventario.
func (uc *UseCase) UpdateStock(ctx context.Context, productID string, form dto.UpdateStockForm) error {
	in := dto.UpsertInventoryRequest{
		Quantity:  &form.Quantity,
		Warehouse: &form.Warehouse,
	}
	_, err := uc.inventory.UpdateInventory(ctx, productID, in)
	return err
}
