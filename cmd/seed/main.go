// seed carga datos de demostración (empresa, bodegas, productos, proveedor e inventario)
// usando los mismos casos de uso que la API.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que cmd/api (DATABASE_URL, DB_*, ...). Aplica el esquema si hace falta.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockflow-api/pkg/config"
	"github.com/jhoicas/stockflow-api/pkg/logger"
	"github.com/shopspring/decimal"
)

type seedProduct struct {
	name      string
	sku       string
	price     string
	threshold *int
	stock     []int // cantidad por bodega, en el orden de creación
}

func intPtr(n int) *int { return &n }

var products = []seedProduct{
	{name: "Widget", sku: "WID-1", price: "12.50", stock: []int{5, 40}},
	{name: "Tornillo M4", sku: "TOR-M4", price: "0.15", threshold: intPtr(200), stock: []int{150, 500}},
	{name: "Taladro", sku: "TAL-01", price: "89.90", threshold: intPtr(3), stock: []int{2, 8}},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	if err := seed(ctx, postgres.NewStore(pool), log); err != nil {
		log.Error().Err(err).Msg("seed")
		os.Exit(1)
	}
	log.Info().Msg("datos de demostración cargados")
}

func seed(ctx context.Context, store repository.Store, log *logger.Logger) error {
	companies := usecase.NewCompanyUseCase(store)
	warehouses := usecase.NewWarehouseUseCase(store)
	suppliers := usecase.NewSupplierUseCase(store)
	catalog := usecase.NewProductUseCase(store, usecase.DeleteRestrict)
	levels := inventory.NewUseCase(store)

	company, err := companies.Create(ctx, dto.CreateCompanyRequest{Name: "StockFlow Demo"})
	if err != nil {
		return err
	}
	var warehouseIDs []int64
	for _, name := range []string{"Bodega Central", "Bodega Norte"} {
		w, err := warehouses.Create(ctx, company.ID, dto.CreateWarehouseRequest{Name: name})
		if err != nil {
			return err
		}
		warehouseIDs = append(warehouseIDs, w.ID)
	}
	if _, err := suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "Distribuidora Demo", ContactEmail: "compras@demo.co"}); err != nil {
		return err
	}

	for _, p := range products {
		price := decimal.RequireFromString(p.price)
		id, err := catalog.Create(ctx, dto.ProductRequest{
			Name:              p.name,
			SKU:               p.sku,
			Price:             &price,
			LowStockThreshold: p.threshold,
		})
		if errors.Is(err, domain.ErrDuplicate) {
			log.Warn().Str("sku", p.sku).Msg("producto ya existe, se omite")
			continue
		}
		if err != nil {
			return err
		}
		for i, qty := range p.stock {
			if _, err := levels.Create(ctx, dto.CreateInventoryRequest{
				ProductID:   id,
				WarehouseID: warehouseIDs[i],
				Quantity:    qty,
			}); err != nil {
				return err
			}
		}
	}
	log.Info().Int64("company_id", company.ID).Msg("empresa de demostración creada")
	return nil
}
