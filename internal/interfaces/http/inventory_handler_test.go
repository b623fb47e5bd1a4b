package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duplo-darren/ecomm-workshopv2/internal/application/dto"
	"github.com/duplo-darren/ecomm-workshopv2/internal/application/usecase"
	"github.com/duplo-darren/ecomm-workshopv2/internal/domain/entity"
	ihttp "github.com/duplo-darren/ecomm-workshopv2/internal/interfaces/http"
)

type memInventoryRepo struct {
	records map[string]*entity.InventoryRecord
}

func newMemInventoryRepo() *memInventoryRepo {
	return &memInventoryRepo{records: map[string]*entity.InventoryRecord{}}
}

func (r *memInventoryRepo) Create(rec *entity.InventoryRecord) error {
	cp := *rec
	r.records[rec.ProductID] = &cp
	return nil
}

func (r *memInventoryRepo) GetByProductID(productID string) (*entity.InventoryRecord, error) {
	rec, ok := r.records[productID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *memInventoryRepo) List() ([]*entity.InventoryRecord, error) {
	var list []*entity.InventoryRecord
	for _, rec := range r.records {
		cp := *rec
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memInventoryRepo) Update(rec *entity.InventoryRecord) error {
	cp := *rec
	r.records[rec.ProductID] = &cp
	return nil
}

func newInventoryApp(repo *memInventoryRepo) *fiber.App {
	app := fiber.New()
	ihttp.InventoryRouter(app, ihttp.InventoryRouterDeps{
		InventoryUC: usecase.NewInventoryUseCase(repo),
		DB:          okPinger{},
	})
	return app
}

// Producto sin registro: 200 con el default, nunca 404, y sin crear fila.
func TestInventoryGet_SinRegistro_Devuelve200ConDefault(t *testing.T) {
	repo := newMemInventoryRepo()
	app := newInventoryApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/999999", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decodeBody[dto.InventoryResponse](t, resp)
	assert.Equal(t, "999999", out.ProductID)
	assert.Equal(t, int64(0), out.Quantity)
	assert.Equal(t, "main", out.Warehouse)
	assert.Empty(t, out.ID)
	assert.Nil(t, out.UpdatedAt)

	assert.Empty(t, repo.records, "el GET no debe persistir nada")
}

func TestInventoryUpsert_CreaYLuegoActualiza(t *testing.T) {
	app := newInventoryApp(newMemInventoryRepo())

	req := httptest.NewRequest(http.MethodPut, "/api/inventory/p-1",
		strings.NewReader(`{"quantity":50,"warehouse":"east"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	created := decodeBody[dto.InventoryResponse](t, resp)
	assert.Equal(t, int64(50), created.Quantity)
	assert.Equal(t, "east", created.Warehouse)
	assert.NotEmpty(t, created.ID)

	// Upsert parcial: solo quantity, el warehouse debe quedarse.
	req = httptest.NewRequest(http.MethodPut, "/api/inventory/p-1",
		strings.NewReader(`{"quantity":10}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)

	updated := decodeBody[dto.InventoryResponse](t, resp)
	assert.Equal(t, created.ID, updated.ID, "misma fila, no una segunda")
	assert.Equal(t, int64(10), updated.Quantity)
	assert.Equal(t, "east", updated.Warehouse)
}

func TestInventoryUpsert_CuerpoInvalido_Devuelve400(t *testing.T) {
	app := newInventoryApp(newMemInventoryRepo())

	req := httptest.NewRequest(http.MethodPut, "/api/inventory/p-1", strings.NewReader(`{no es json`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_BODY", out.Code)
}

func TestInventoryList(t *testing.T) {
	app := newInventoryApp(newMemInventoryRepo())

	req := httptest.NewRequest(http.MethodPut, "/api/inventory/p-1", strings.NewReader(`{"quantity":5}`))
	req.Header.Set("Content-Type", "application/json")
	_, err := app.Test(req, -1)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	list := decodeBody[[]dto.InventoryResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "p-1", list[0].ProductID)
}
