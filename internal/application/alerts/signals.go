package alerts

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// SalesActivity decide si un producto tuvo ventas recientes. Solo los productos activos generan alerta.
type SalesActivity interface {
	HasRecentSales(ctx context.Context, product *entity.Product) (bool, error)
}

// SalesActivityFunc adapta una función a SalesActivity.
type SalesActivityFunc func(ctx context.Context, product *entity.Product) (bool, error)

// HasRecentSales implementa SalesActivity.
func (f SalesActivityFunc) HasRecentSales(ctx context.Context, product *entity.Product) (bool, error) {
	return f(ctx, product)
}

// AlwaysActive considera que todo producto tiene ventas recientes.
// No existe todavía un registro de ventas del cual derivar la actividad.
var AlwaysActive SalesActivity = SalesActivityFunc(func(context.Context, *entity.Product) (bool, error) {
	return true, nil
})

// StockoutEstimator estima los días que faltan para que la fila de inventario se agote.
type StockoutEstimator interface {
	DaysUntilStockout(ctx context.Context, product *entity.Product, inv *entity.Inventory) int
}

// StockoutEstimatorFunc adapta una función a StockoutEstimator.
type StockoutEstimatorFunc func(ctx context.Context, product *entity.Product, inv *entity.Inventory) int

// DaysUntilStockout implementa StockoutEstimator.
func (f StockoutEstimatorFunc) DaysUntilStockout(ctx context.Context, product *entity.Product, inv *entity.Inventory) int {
	return f(ctx, product, inv)
}

// DefaultStockoutDays estimación fija usada cuando no se configura otra.
const DefaultStockoutDays = 12

// ConstantStockout devuelve siempre days.
func ConstantStockout(days int) StockoutEstimator {
	return StockoutEstimatorFunc(func(context.Context, *entity.Product, *entity.Inventory) int {
		return days
	})
}

// SupplierSelector elige el proveedor sugerido para reabastecer un producto.
// Devolver (nil, nil) significa "sin proveedor"; la alerta se emite igual con supplier null.
type SupplierSelector interface {
	Select(ctx context.Context, r repository.Repositories, product *entity.Product) (*entity.Supplier, error)
}

// SupplierSelectorFunc adapta una función a SupplierSelector.
type SupplierSelectorFunc func(ctx context.Context, r repository.Repositories, product *entity.Product) (*entity.Supplier, error)

// Select implementa SupplierSelector.
func (f SupplierSelectorFunc) Select(ctx context.Context, r repository.Repositories, product *entity.Product) (*entity.Supplier, error) {
	return f(ctx, r, product)
}

// FirstSupplier sugiere el proveedor de menor id, sin importar el producto.
// Los productos aún no tienen relación con proveedores.
var FirstSupplier SupplierSelector = SupplierSelectorFunc(func(ctx context.Context, r repository.Repositories, _ *entity.Product) (*entity.Supplier, error) {
	return r.Suppliers.First(ctx)
})

// NoSupplier nunca sugiere proveedor.
var NoSupplier SupplierSelector = SupplierSelectorFunc(func(context.Context, repository.Repositories, *entity.Product) (*entity.Supplier, error) {
	return nil, nil
})

// SupplierSelectorFor devuelve el selector de la política configurada ("first" o "none").
// Cualquier otro valor usa FirstSupplier.
func SupplierSelectorFor(policy string) SupplierSelector {
	if policy == "none" {
		return NoSupplier
	}
	return FirstSupplier
}
