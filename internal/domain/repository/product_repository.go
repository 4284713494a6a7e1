package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// ProductStock producto con su stock total (suma de inventario en todas las bodegas).
type ProductStock struct {
	Product *entity.Product
	Stock   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetBySKU devuelven (nil, nil) si no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	// ListWithStock lista todos los productos ordenados por ID con su stock agregado.
	ListWithStock(ctx context.Context) ([]ProductStock, error)
}
