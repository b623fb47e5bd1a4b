package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/duplo-darren/ecomm-workshopv2/internal/application/composite"
	"github.com/duplo-darren/ecomm-workshopv2/internal/infrastructure/serviceclient"
	httpRouter "github.com/duplo-darren/ecomm-workshopv2/internal/interfaces/http"
	"github.com/duplo-darren/ecomm-workshopv2/pkg/config"
	"github.com/duplo-darren/ecomm-workshopv2/pkg/logger"
)

func main() {
	cfg, err := config.Load(config.Defaults{
		AppName:  "frontend",
		HTTPPort: 8000,
	})
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("catalog_url", cfg.Services.CatalogURL).
		Str("inventory_url", cfg.Services.InventoryURL).
		Msg("iniciando frontend")

	catalogClient := serviceclient.NewCatalogClient(cfg.Services.CatalogURL, cfg.Services.Timeout())
	inventoryClient := serviceclient.NewInventoryClient(cfg.Services.InventoryURL, cfg.Services.Timeout())
	compositeUC := composite.NewUseCase(catalogClient, inventoryClient)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.FrontendRouter(app, httpRouter.FrontendRouterDeps{
		CompositeUC: compositeUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("frontend detenido")
}
