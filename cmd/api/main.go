package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	_ "github.com/jhoicas/stockflow-api/docs"
	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockflow-api/internal/interfaces/http"
	"github.com/jhoicas/stockflow-api/pkg/config"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// @title        StockFlow API
// @version      1.0
// @description  Catálogo de productos, inventario por bodega y alertas de stock bajo.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var store repository.Store
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store = memory.NewStore()
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("aplicar esquema")
			}
		}
		store = postgres.NewStore(pool)
	}

	productUC := usecase.NewProductUseCase(store, usecase.DeletePolicy(cfg.Catalog.DeletePolicy))
	companyUC := usecase.NewCompanyUseCase(store)
	warehouseUC := usecase.NewWarehouseUseCase(store)
	supplierUC := usecase.NewSupplierUseCase(store)
	bundleUC := usecase.NewBundleUseCase(store)
	inventoryUC := inventory.NewUseCase(store)
	alertEngine := alerts.NewEngine(store,
		alerts.WithDefaultThreshold(cfg.Alerts.DefaultThreshold),
		alerts.WithStockoutEstimator(alerts.ConstantStockout(cfg.Alerts.StockoutDays)),
		alerts.WithSupplierSelector(alerts.SupplierSelectorFor(cfg.Alerts.SupplierPolicy)),
		alerts.WithLogger(log.Named("alerts").Zerolog()),
	)

	httpLog := log.Named("http").Zerolog()
	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Log:         httpLog,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.DocsEnabled {
		if _, err := os.Stat(swaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: swaggerFile,
				Path:     "docs",
				Title:    "StockFlow API",
			}))
		} else {
			log.Warn().Str("file", swaggerFile).Msg("documentación deshabilitada: archivo no encontrado")
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		ProductUC:   productUC,
		CompanyUC:   companyUC,
		WarehouseUC: warehouseUC,
		SupplierUC:  supplierUC,
		BundleUC:    bundleUC,
		InventoryUC: inventoryUC,
		AlertEngine: alertEngine,
		Log:         httpLog,
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

	log.Info().Msg("aplicación detenida")
}
