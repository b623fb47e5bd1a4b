package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/duplo-darren/ecomm-workshopv2/internal/application/dto"
	"github.com/duplo-darren/ecomm-workshopv2/internal/domain/entity"
	"github.com/duplo-darren/ecomm-workshopv2/internal/domain/repository"
)

// InventoryUseCase casos de uso del servicio de inventario.
// Nunca consulta el catálogo: escribir stock de un producto que (todavía) no existe
// es legal — los dos servicios se acoplan solo por el product_id opaco.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// List devuelve todos los registros tal cual están almacenados.
func (uc *InventoryUseCase) List() ([]dto.InventoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, *toInventoryResponse(rec))
	}
	return items, nil
}

// GetByProductID devuelve el registro del producto o, si no existe, un default
// sintetizado (quantity 0, warehouse "main") SIN crear fila alguna. La ausencia de
// stock nunca es un error para quien solo consulta: todo producto tiene stock cero
// hasta que alguien lo fija.
func (uc *InventoryUseCase) GetByProductID(productID string) (*dto.InventoryResponse, error) {
	rec, err := uc.repo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return &dto.InventoryResponse{
			ProductID: productID,
			Quantity:  0,
			Warehouse: entity.DefaultWarehouse,
		}, nil
	}
	return toInventoryResponse(rec), nil
}

// Upsert crea o actualiza el registro del producto con una sola entrada: lee el
// estado actual, funde los campos provistos sobre la fila existente o sobre los
// defaults, y escribe. El caller nunca necesita saber qué caso aplicó.
func (uc *InventoryUseCase) Upsert(productID string, in dto.UpsertInventoryRequest) (*dto.InventoryResponse, error) {
	rec, err := uc.repo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	if rec == nil {
		rec = &entity.InventoryRecord{
			ID:        uuid.New().String(),
			ProductID: productID,
			Quantity:  0,
			Warehouse: entity.DefaultWarehouse,
			UpdatedAt: now,
		}
		applyUpsert(rec, in)
		if err := uc.repo.Create(rec); err != nil {
			return nil, err
		}
		return toInventoryResponse(rec), nil
	}

	applyUpsert(rec, in)
	rec.UpdatedAt = now
	if err := uc.repo.Update(rec); err != nil {
		return nil, err
	}
	return toInventoryResponse(rec), nil
}

func applyUpsert(rec *entity.InventoryRecord, in dto.UpsertInventoryRequest) {
	if in.Quantity != nil {
		rec.Quantity = *in.Quantity
	}
	if in.Warehouse != nil {
		rec.Warehouse = *in.Warehouse
	}
}

func toInventoryResponse(rec *entity.InventoryRecord) *dto.InventoryResponse {
	updatedAt := rec.UpdatedAt
	return &dto.InventoryResponse{
		ID:        rec.ID,
		ProductID: rec.ProductID,
		Quantity:  rec.Quantity,
		Warehouse: rec.Warehouse,
		UpdatedAt: &updatedAt,
	}
}
