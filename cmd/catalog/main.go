package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/duplo-darren/ecomm-workshopv2/internal/application/usecase"
	"github.com/duplo-darren/ecomm-workshopv2/internal/infrastructure/postgres"
	"github.com/duplo-darren/ecomm-workshopv2/internal/infrastructure/storage"
	httpRouter "github.com/duplo-darren/ecomm-workshopv2/internal/interfaces/http"
	"github.com/duplo-darren/ecomm-workshopv2/pkg/config"
	"github.com/duplo-darren/ecomm-workshopv2/pkg/logger"
)

func main() {
	cfg, err := config.Load(config.Defaults{
		AppName:  "catalog",
		HTTPPort: 8001,
		DBName:   "ecomm_catalog",
	})
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando servicio de catálogo")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureCatalogSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de catálogo")
	}

	// Backend de imágenes: uno solo por proceso, elegido aquí y nunca más.
	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("backend de almacenamiento")
	}
	if cfg.Storage.UseObjectStore {
		log.Info().Str("bucket", cfg.Storage.Bucket).Msg("imágenes en object storage")
	} else {
		log.Info().Str("dir", cfg.Storage.UploadDir).Msg("imágenes en filesystem local")
	}

	productRepo := postgres.NewProductRepository(pool)
	productUC := usecase.NewProductUseCase(productRepo, store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/catalog/swagger.json",
		Path:     "docs",
		Title:    "Catalog API",
	}))

	// Con backend local las imágenes se sirven como estáticos desde este servicio.
	if !cfg.Storage.UseObjectStore {
		app.Static("/static/uploads", cfg.Storage.UploadDir)
	}

	httpRouter.CatalogRouter(app, httpRouter.CatalogRouterDeps{
		ProductUC: productUC,
		DB:        pool,
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

	log.Info().Msg("servicio de catálogo detenido")
}
