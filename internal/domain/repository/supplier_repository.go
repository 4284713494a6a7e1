package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	// First devuelve el proveedor de menor ID, o nil si no hay proveedores.
	First(ctx context.Context) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
}
