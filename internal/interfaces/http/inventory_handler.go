package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/duplo-darren/ecomm-workshopv2/internal/application/dto"
	"github.com/duplo-darren/ecomm-workshopv2/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP del servicio de inventario.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar registros de stock
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   dto.InventoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByProductID godoc
// @Summary      Stock de un producto
// @Description  Si no hay registro devuelve el default (quantity 0, warehouse "main")
//               con 200, sin crear fila: la ausencia de stock nunca es un 404.
// @Tags         inventory
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto (no se valida contra el catálogo)"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/{product_id} [get]
func (h *InventoryHandler) GetByProductID(c *fiber.Ctx) error {
	productID := c.Params("product_id")
	out, err := h.uc.GetByProductID(productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Crear o actualizar stock
// @Description  Una sola entrada para ambos casos: crea con defaults si no hay registro,
//               o funde los campos provistos sobre el existente. quantity y warehouse
//               son opcionales; los ausentes no se tocan.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Param        body        body  dto.UpsertInventoryRequest  true  "Campos del upsert"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/{product_id} [put]
func (h *InventoryHandler) Upsert(c *fiber.Ctx) error {
	productID := c.Params("product_id")
	var in dto.UpsertInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Upsert(productID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
