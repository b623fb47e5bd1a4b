package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/duplo-darren/ecomm-workshopv2/internal/application/dto"
	"github.com/duplo-darren/ecomm-workshopv2/internal/domain"
	"github.com/duplo-darren/ecomm-workshopv2/internal/domain/entity"
	"github.com/duplo-darren/ecomm-workshopv2/internal/domain/repository"
	"github.com/duplo-darren/ecomm-workshopv2/internal/infrastructure/storage"
)

// ProductUseCase casos de uso CRUD del catálogo. Las URLs de imagen se resuelven
// al leer contra el backend de almacenamiento activo; nunca se persisten.
type ProductUseCase struct {
	repo  repository.ProductRepository
	store storage.Storage
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, store storage.Storage) *ProductUseCase {
	return &ProductUseCase{repo: repo, store: store}
}

// Create crea un producto. Si trae imagen, se persiste vía el resolver ANTES de
// escribir el registro y la ruta relativa resultante queda en el producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	imagePath := ""
	if in.Image != nil {
		path, err := uc.store.Save(ctx, in.Image.Filename, in.Image.ContentType, in.Image.Data)
		if err != nil {
			return nil, err
		}
		imagePath = path
	}

	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImagePath:   imagePath,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(product), nil
}

// List devuelve todos los productos con la URL de imagen resuelta en el momento de la lectura.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *uc.toResponse(p))
	}
	return items, nil
}

// Update actualiza name/description/price; campos nil quedan sin tocar.
// La imagen no se puede reemplazar por esta vía: un update parcial fallido dejaría
// assets huérfanos. Devuelve nil, nil si el producto no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// Delete elimina el producto y, si tenía imagen, borra el asset como best-effort:
// el fallo del borrado del asset se registra pero nunca bloquea el borrado del registro.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	if product.ImagePath != "" {
		if err := uc.store.Delete(ctx, product.ImagePath); err != nil {
			log.Warn().Err(err).
				Str("product_id", id).
				Str("image_path", product.ImagePath).
				Msg("no se pudo eliminar el asset de imagen")
		}
	}
	return nil
}

func (uc *ProductUseCase) toResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImagePath:   p.ImagePath,
		ImageURL:    uc.store.URL(p.ImagePath),
		CreatedAt:   p.CreatedAt,
	}
}
