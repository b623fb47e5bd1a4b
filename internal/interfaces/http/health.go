package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/duplo-darren/ecomm-workshopv2/internal/application/dto"
)

// Pinger lo implementa pgxpool.Pool; permite chequear la dependencia del servicio.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck handler de /health para los servicios con base de datos:
// pinguea y responde {"status":"healthy"} o 503.
func HealthCheck(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "unhealthy"})
		}
		return c.JSON(dto.HealthResponse{Status: "healthy"})
	}
}

// HealthOK handler de /health para el frontend: sin dependencias propias que chequear.
func HealthOK(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "healthy"})
}
