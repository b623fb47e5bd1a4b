package postgres

import (
	"context"
	"fmt"
)

// Esquemas mínimos de cada servicio. Cada store posee su propia base de datos;
// nada cruza entre ellas: ni foreign keys ni constraints sobre product_id.
const (
	catalogSchema = `
		CREATE TABLE IF NOT EXISTS products (
			id          UUID PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price       NUMERIC(12,2) NOT NULL,
			image_path  TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	inventorySchema = `
		CREATE TABLE IF NOT EXISTS inventory (
			id         UUID PRIMARY KEY,
			product_id TEXT NOT NULL,
			quantity   BIGINT NOT NULL DEFAULT 0,
			warehouse  TEXT NOT NULL DEFAULT 'main',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	// Índice simple, no único: la unicidad por product_id es solo de régimen
	// estable, el storage no la impone.
	inventoryIndex = `
		CREATE INDEX IF NOT EXISTS idx_inventory_product_id ON inventory (product_id)`
)

// EnsureCatalogSchema crea la tabla de productos si no existe.
func EnsureCatalogSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, catalogSchema); err != nil {
		return fmt.Errorf("crear esquema de catálogo: %w", err)
	}
	return nil
}

// EnsureInventorySchema crea la tabla de inventario si no existe.
func EnsureInventorySchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, inventorySchema); err != nil {
		return fmt.Errorf("crear esquema de inventario: %w", err)
	}
	if _, err := q.Exec(ctx, inventoryIndex); err != nil {
		return fmt.Errorf("crear índice de inventario: %w", err)
	}
	return nil
}
