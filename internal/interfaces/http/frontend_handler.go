package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/duplo-darren/ecomm-workshopv2/internal/application/composite"
	"github.com/duplo-darren/ecomm-workshopv2/internal/application/dto"
	"github.com/duplo-darren/ecomm-workshopv2/internal/domain"
	"github.com/duplo-darren/ecomm-workshopv2/internal/domain/entity"
)

// FrontendHandler maneja las rutas del frontend: listados, vista compuesta de
// producto y los formularios de administración que reenvía a los backends.
type FrontendHandler struct {
	uc *composite.UseCase
}

// NewFrontendHandler construye el handler.
func NewFrontendHandler(uc *composite.UseCase) *FrontendHandler {
	return &FrontendHandler{uc: uc}
}

// Index listado de productos: solo catálogo, sin tocar inventario.
func (h *FrontendHandler) Index(c *fiber.Ctx) error {
	products, err := h.uc.ListProducts(c.Context())
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(products)
}

// Admin datos de la página de administración (mismo listado del catálogo).
func (h *FrontendHandler) Admin(c *fiber.Ctx) error {
	products, err := h.uc.ListProducts(c.Context())
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(products)
}

// ProductDetail vista compuesta: catálogo + inventario en paralelo.
func (h *FrontendHandler) ProductDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.ProductDetail(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return backendError(c, err)
	}
	return c.JSON(out)
}

// AddProduct reenvía el formulario de alta al catálogo y redirige a /admin.
func (h *FrontendHandler) AddProduct(c *fiber.Ctx) error {
	form := dto.AddProductForm{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
	}
	if fh, err := c.FormFile("image"); err == nil && fh != nil && fh.Filename != "" {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "imagen ilegible"})
		}
		defer f.Close()
		form.Image = &dto.FileUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        f,
		}
	}

	if err := h.uc.AddProduct(c.Context(), form); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el catálogo rechazó el alta"})
		}
		return backendError(c, err)
	}
	return c.Redirect("/admin", fiber.StatusFound)
}

// UpdateStock reenvía el formulario de stock al inventario y redirige al detalle.
func (h *FrontendHandler) UpdateStock(c *fiber.Ctx) error {
	id := c.Params("id")

	quantity := int64(0)
	if raw := c.FormValue("quantity"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser numérico"})
		}
		quantity = n
	}
	warehouse := c.FormValue("warehouse")
	if warehouse == "" {
		warehouse = entity.DefaultWarehouse
	}

	form := dto.UpdateStockForm{Quantity: quantity, Warehouse: warehouse}
	if err := h.uc.UpdateStock(c.Context(), id, form); err != nil {
		return backendError(c, err)
	}
	return c.Redirect("/products/"+id, fiber.StatusFound)
}

// backendError un backend no respondió o respondió 5xx. Nunca se degrada a un
// valor por defecto: la indisponibilidad se propaga tal cual al usuario.
func backendError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "BACKEND_UNAVAILABLE",
		Message: err.Error(),
	})
}
