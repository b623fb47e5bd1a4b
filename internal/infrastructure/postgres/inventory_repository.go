package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/duplo-darren/ecomm-workshopv2/internal/domain/entity"
	"github.com/duplo-darren/ecomm-workshopv2/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
// product_id no tiene constraint de unicidad ni foreign key: la relación con el
// catálogo es blanda y la semántica de upsert vive en el caso de uso.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de stock.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un registro nuevo de stock.
func (r *InventoryRepo) Create(record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (id, product_id, quantity, warehouse, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.ProductID, record.Quantity, record.Warehouse, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByProductID obtiene el registro de un producto. Devuelve nil, nil si no hay.
func (r *InventoryRepo) GetByProductID(productID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT id, product_id, quantity, warehouse, updated_at
		FROM inventory WHERE product_id = $1
		ORDER BY updated_at DESC LIMIT 1`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&rec.ID, &rec.ProductID, &rec.Quantity, &rec.Warehouse, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &rec, nil
}

// List devuelve todos los registros de stock.
func (r *InventoryRepo) List() ([]*entity.InventoryRecord, error) {
	query := `
		SELECT id, product_id, quantity, warehouse, updated_at
		FROM inventory ORDER BY updated_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryRecord
	for rows.Next() {
		var rec entity.InventoryRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.Quantity, &rec.Warehouse, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Update reescribe quantity, warehouse y updated_at del registro.
func (r *InventoryRepo) Update(record *entity.InventoryRecord) error {
	query := `
		UPDATE inventory SET quantity = $2, warehouse = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.Quantity, record.Warehouse, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}
