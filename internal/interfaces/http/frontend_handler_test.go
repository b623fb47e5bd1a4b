package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duplo-darren/ecomm-workshopv2/internal/application/composite"
	"github.com/duplo-darren/ecomm-workshopv2/internal/application/dto"
	"github.com/duplo-darren/ecomm-workshopv2/internal/domain"
	ihttp "github.com/duplo-darren/ecomm-workshopv2/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los clientes de backend del frontend
// ──────────────────────────────────────────────────────────────────────────────

type stubCatalog struct {
	products map[string]dto.ProductResponse
	err      error
	created  []dto.AddProductForm
}

func (c *stubCatalog) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	if c.err != nil {
		return nil, c.err
	}
	var list []dto.ProductResponse
	for _, p := range c.products {
		list = append(list, p)
	}
	return list, nil
}

func (c *stubCatalog) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if c.err != nil {
		return nil, c.err
	}
	p, ok := c.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (c *stubCatalog) CreateProduct(ctx context.Context, form dto.AddProductForm) (*dto.ProductResponse, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.created = append(c.created, form)
	return &dto.ProductResponse{ID: "nuevo", Name: form.Name}, nil
}

type stubInventory struct {
	err     error
	updates map[string]dto.UpsertInventoryRequest
}

func (i *stubInventory) GetInventory(ctx context.Context, productID string) (*dto.InventoryResponse, error) {
	if i.err != nil {
		return nil, i.err
	}
	return &dto.InventoryResponse{ProductID: productID, Quantity: 45, Warehouse: "main"}, nil
}

func (i *stubInventory) UpdateInventory(ctx context.Context, productID string, in dto.UpsertInventoryRequest) (*dto.InventoryResponse, error) {
	if i.err != nil {
		return nil, i.err
	}
	if i.updates == nil {
		i.updates = map[string]dto.UpsertInventoryRequest{}
	}
	i.updates[productID] = in
	return &dto.InventoryResponse{ProductID: productID}, nil
}

func newFrontendApp(catalog *stubCatalog, inventory *stubInventory) *fiber.App {
	app := fiber.New()
	ihttp.FrontendRouter(app, ihttp.FrontendRouterDeps{
		CompositeUC: composite.NewUseCase(catalog, inventory),
	})
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /products/:id — vista compuesta
// ──────────────────────────────────────────────────────────────────────────────

func TestFrontendProductDetail_UneLasDosFuentes(t *testing.T) {
	catalog := &stubCatalog{products: map[string]dto.ProductResponse{
		"p-1": {ID: "p-1", Name: "Webcam HD"},
	}}
	app := newFrontendApp(catalog, &stubInventory{})

	req := httptest.NewRequest(http.MethodGet, "/products/p-1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decodeBody[dto.CompositeProductResponse](t, resp)
	assert.Equal(t, "Webcam HD", out.Product.Name)
	assert.Equal(t, int64(45), out.Inventory.Quantity)
}

func TestFrontendProductDetail_NoExiste_Devuelve404(t *testing.T) {
	app := newFrontendApp(&stubCatalog{}, &stubInventory{})

	req := httptest.NewRequest(http.MethodGet, "/products/no-existe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", out.Code)
}

// Backend caído: 500 explícito, nunca una vista degradada.
func TestFrontendProductDetail_BackendCaido_Devuelve500(t *testing.T) {
	catalog := &stubCatalog{products: map[string]dto.ProductResponse{
		"p-1": {ID: "p-1", Name: "Hub"},
	}}
	app := newFrontendApp(catalog, &stubInventory{err: domain.ErrUnavailable})

	req := httptest.NewRequest(http.MethodGet, "/products/p-1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "BACKEND_UNAVAILABLE", out.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /admin/add-product — alta vía formulario
// ──────────────────────────────────────────────────────────────────────────────

func TestFrontendAddProduct_ReenviaYRedirige(t *testing.T) {
	catalog := &stubCatalog{products: map[string]dto.ProductResponse{}}
	app := newFrontendApp(catalog, &stubInventory{})

	form := url.Values{}
	form.Set("name", "Laptop Stand")
	form.Set("price", "34.99")
	req := httptest.NewRequest(http.MethodPost, "/admin/add-product", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))
	require.Len(t, catalog.created, 1)
	assert.Equal(t, "34.99", catalog.created[0].Price, "el precio viaja sin validar, lo valida el catálogo")
}

func TestFrontendAddProduct_CatalogoRechaza_Devuelve400(t *testing.T) {
	app := newFrontendApp(&stubCatalog{err: domain.ErrInvalidInput}, &stubInventory{})

	form := url.Values{}
	form.Set("name", "")
	req := httptest.NewRequest(http.MethodPost, "/admin/add-product", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /products/:id/inventory — stock vía formulario
// ──────────────────────────────────────────────────────────────────────────────

func TestFrontendUpdateStock_ReenviaYRedirigeAlDetalle(t *testing.T) {
	inventory := &stubInventory{}
	app := newFrontendApp(&stubCatalog{}, inventory)

	form := url.Values{}
	form.Set("quantity", "25")
	form.Set("warehouse", "east")
	req := httptest.NewRequest(http.MethodPost, "/products/p-1/inventory", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/products/p-1", resp.Header.Get("Location"))

	sent := inventory.updates["p-1"]
	require.NotNil(t, sent.Quantity)
	assert.Equal(t, int64(25), *sent.Quantity)
	require.NotNil(t, sent.Warehouse)
	assert.Equal(t, "east", *sent.Warehouse)
}

// Campos ausentes: quantity 0 y warehouse "main".
func TestFrontendUpdateStock_SinCampos_UsaDefaults(t *testing.T) {
	inventory := &stubInventory{}
	app := newFrontendApp(&stubCatalog{}, inventory)

	req := httptest.NewRequest(http.MethodPost, "/products/p-1/inventory", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	sent := inventory.updates["p-1"]
	require.NotNil(t, sent.Quantity)
	assert.Equal(t, int64(0), *sent.Quantity)
	require.NotNil(t, sent.Warehouse)
	assert.Equal(t, "main", *sent.Warehouse)
}

func TestFrontendUpdateStock_CantidadNoNumerica_Devuelve400(t *testing.T) {
	app := newFrontendApp(&stubCatalog{}, &stubInventory{})

	form := url.Values{}
	form.Set("quantity", "muchos")
	req := httptest.NewRequest(http.MethodPost, "/products/p-1/inventory", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFrontendHealth(t *testing.T) {
	app := newFrontendApp(&stubCatalog{}, &stubInventory{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
