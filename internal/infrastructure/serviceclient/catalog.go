package serviceclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/duplo-darren/ecomm-workshopv2/internal/application/composite"
	"github.com/duplo-darren/ecomm-workshopv2/internal/application/dto"
)

var _ composite.CatalogClient = (*CatalogClient)(nil)

// CatalogClient cliente HTTP del servicio de catálogo.
type CatalogClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewCatalogClient construye el cliente con su URL base (CATALOG_SERVICE_URL).
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: newHTTPClient(timeout),
	}
}

// ListProducts obtiene el listado completo del catálogo.
func (c *CatalogClient) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, joinURL(c.baseURL, "/api/products"), nil)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET /api/products: %w", err)
	}
	var products []dto.ProductResponse
	if err := decodeJSON("catálogo", resp, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct obtiene un producto por ID. Devuelve domain.ErrNotFound en 404.
func (c *CatalogClient) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, joinURL(c.baseURL, "/api/products/"+id), nil)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET /api/products/%s: %w", id, err)
	}
	var product dto.ProductResponse
	if err := decodeJSON("catálogo", resp, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct reenvía el alta como multipart. Los campos viajan tal cual llegaron
// del formulario (price como string sin validar) y la imagen como bytes opacos.
func (c *CatalogClient) CreateProduct(ctx context.Context, form dto.AddProductForm) (*dto.ProductResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField("name", form.Name); err != nil {
		return nil, fmt.Errorf("escribir campo name: %w", err)
	}
	if err := w.WriteField("description", form.Description); err != nil {
		return nil, fmt.Errorf("escribir campo description: %w", err)
	}
	if err := w.WriteField("price", form.Price); err != nil {
		return nil, fmt.Errorf("escribir campo price: %w", err)
	}
	if form.Image != nil {
		part, err := w.CreatePart(imagePartHeader(form.Image))
		if err != nil {
			return nil, fmt.Errorf("crear parte de imagen: %w", err)
		}
		if _, err := io.Copy(part, form.Image.Data); err != nil {
			return nil, fmt.Errorf("copiar imagen: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("cerrar multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, joinURL(c.baseURL, "/api/products"), &body)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("POST /api/products: %w", err)
	}
	var product dto.ProductResponse
	if err := decodeJSON("catálogo", resp, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// imagePartHeader arma la cabecera MIME conservando filename y content type originales.
func imagePartHeader(img *dto.FileUpload) textproto.MIMEHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, img.Filename))
	contentType := img.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)
	return h
}
