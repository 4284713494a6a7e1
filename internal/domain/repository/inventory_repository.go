package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// InventoryRepository define el puerto para las filas de inventario por bodega+producto.
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	GetByID(ctx context.Context, id int64) (*entity.Inventory, error)
	// GetForUpdate obtiene la fila bloqueándola hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Inventory, error)
	GetByProductAndWarehouse(ctx context.Context, productID, warehouseID int64) (*entity.Inventory, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	// ListByWarehouse devuelve las filas de la bodega ordenadas por ID.
	ListByWarehouse(ctx context.Context, warehouseID int64) ([]*entity.Inventory, error)
	CountByProduct(ctx context.Context, productID int64) (int, error)
	DeleteByProduct(ctx context.Context, productID int64) error
}

// InventoryHistoryRepository registro de auditoría de inventario (solo inserción y lectura).
type InventoryHistoryRepository interface {
	Append(ctx context.Context, entry *entity.InventoryHistory) error
	ListByInventory(ctx context.Context, inventoryID int64) ([]*entity.InventoryHistory, error)
	DeleteByProduct(ctx context.Context, productID int64) error
}
