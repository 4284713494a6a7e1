// Package alerts genera el reporte de productos con stock bajo por empresa.
package alerts

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// Engine recorre las bodegas de una empresa y emite una alerta por cada fila de inventario bajo su umbral.
type Engine struct {
	store            repository.Store
	defaultThreshold int
	activity         SalesActivity
	stockout         StockoutEstimator
	suppliers        SupplierSelector
	log              zerolog.Logger
}

// Option configura el Engine.
type Option func(*Engine)

// WithDefaultThreshold umbral para productos sin low_stock_threshold propio.
func WithDefaultThreshold(n int) Option {
	return func(e *Engine) { e.defaultThreshold = n }
}

// WithSalesActivity reemplaza el predicado de actividad de ventas.
func WithSalesActivity(a SalesActivity) Option {
	return func(e *Engine) { e.activity = a }
}

// WithStockoutEstimator reemplaza la estimación de días hasta agotarse.
func WithStockoutEstimator(s StockoutEstimator) Option {
	return func(e *Engine) { e.stockout = s }
}

// WithSupplierSelector reemplaza la elección de proveedor.
func WithSupplierSelector(s SupplierSelector) Option {
	return func(e *Engine) { e.suppliers = s }
}

// WithLogger asigna el logger del motor.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine construye el motor con los valores por defecto: umbral 20, siempre activo,
// 12 días hasta agotarse y el primer proveedor registrado.
func NewEngine(store repository.Store, opts ...Option) *Engine {
	e := &Engine{
		store:            store,
		defaultThreshold: entity.DefaultLowStockThreshold,
		activity:         AlwaysActive,
		stockout:         ConstantStockout(DefaultStockoutDays),
		suppliers:        FirstSupplier,
		log:              zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LowStock arma el reporte de stock bajo de la empresa.
// Una empresa sin bodegas (o inexistente) produce un reporte vacío. Todo se lee en una sola sesión.
func (e *Engine) LowStock(ctx context.Context, companyID int64) (*dto.LowStockReport, error) {
	alerts := make([]dto.LowStockAlert, 0)
	err := e.store.WithSession(ctx, func(r repository.Repositories) error {
		warehouses, err := r.Warehouses.ListByCompany(ctx, companyID)
		if err != nil {
			return fmt.Errorf("listar bodegas: %w", err)
		}
		for _, w := range warehouses {
			rows, err := r.Inventory.ListByWarehouse(ctx, w.ID)
			if err != nil {
				return fmt.Errorf("listar inventario de bodega %d: %w", w.ID, err)
			}
			for _, inv := range rows {
				alert, ok, err := e.evaluate(ctx, r, w, inv)
				if err != nil {
					return err
				}
				if ok {
					alerts = append(alerts, alert)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.LowStockReport{Alerts: alerts, TotalAlerts: len(alerts)}, nil
}

func (e *Engine) evaluate(ctx context.Context, r repository.Repositories, w *entity.Warehouse, inv *entity.Inventory) (dto.LowStockAlert, bool, error) {
	product, err := r.Products.GetByID(ctx, inv.ProductID)
	if err != nil {
		return dto.LowStockAlert{}, false, fmt.Errorf("obtener producto %d: %w", inv.ProductID, err)
	}
	if product == nil {
		e.log.Debug().
			Int64("inventory_id", inv.ID).
			Int64("product_id", inv.ProductID).
			Msg("fila de inventario sin producto, se omite")
		return dto.LowStockAlert{}, false, nil
	}

	threshold := product.AlertThreshold(e.defaultThreshold)
	if inv.Quantity >= threshold {
		return dto.LowStockAlert{}, false, nil
	}
	active, err := e.activity.HasRecentSales(ctx, product)
	if err != nil {
		return dto.LowStockAlert{}, false, fmt.Errorf("actividad de ventas del producto %d: %w", product.ID, err)
	}
	if !active {
		return dto.LowStockAlert{}, false, nil
	}

	supplier, err := e.suppliers.Select(ctx, r, product)
	if err != nil {
		return dto.LowStockAlert{}, false, fmt.Errorf("proveedor del producto %d: %w", product.ID, err)
	}

	return dto.LowStockAlert{
		ProductID:         product.ID,
		ProductName:       product.Name,
		SKU:               product.SKU,
		WarehouseID:       w.ID,
		WarehouseName:     w.Name,
		CurrentStock:      inv.Quantity,
		Threshold:         threshold,
		DaysUntilStockout: e.stockout.DaysUntilStockout(ctx, product, inv),
		Supplier:          usecase.ToSupplierResponse(supplier),
	}, true, nil
}
