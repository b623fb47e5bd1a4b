package serviceclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/duplo-darren/ecomm-workshopv2/internal/application/composite"
	"github.com/duplo-darren/ecomm-workshopv2/internal/application/dto"
)

var _ composite.InventoryClient = (*InventoryClient)(nil)

// InventoryClient cliente HTTP del servicio de inventario.
type InventoryClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewInventoryClient construye el cliente con su URL base (INVENTORY_SERVICE_URL).
func NewInventoryClient(baseURL string, timeout time.Duration) *InventoryClient {
	return &InventoryClient{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: newHTTPClient(timeout),
	}
}

// GetInventory obtiene el stock de un producto. El servicio de inventario responde
// 200 incluso sin registro (default sintetizado), así que aquí no hay caso NotFound.
func (c *InventoryClient) GetInventory(ctx context.Context, productID string) (*dto.InventoryResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, joinURL(c.baseURL, "/api/inventory/"+productID), nil)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET /api/inventory/%s: %w", productID, err)
	}
	var record dto.InventoryResponse
	if err := decodeJSON("inventario", resp, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateInventory ejecuta el upsert de stock del producto.
func (c *InventoryClient) UpdateInventory(ctx context.Context, productID string, in dto.UpsertInventoryRequest) (*dto.InventoryResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("serializar upsert: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, joinURL(c.baseURL, "/api/inventory/"+productID), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("PUT /api/inventory/%s: %w", productID, err)
	}
	var record dto.InventoryResponse
	if err := decodeJSON("inventario", resp, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
