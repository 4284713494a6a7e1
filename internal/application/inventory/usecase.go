package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// UseCase gestiona las filas de inventario por bodega y su historial de ajustes.
type UseCase struct {
	store repository.Store
	now   func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.Store) *UseCase {
	return &UseCase{store: store, now: time.Now}
}

// Create registra la cantidad inicial de un producto en una bodega.
// Producto o bodega inexistente -> domain.ErrNotFound; par repetido -> domain.ErrDuplicate.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.ProductID <= 0 || in.WarehouseID <= 0 || !entity.ValidQuantity(in.Quantity) {
		return nil, domain.ErrInvalidInput
	}
	inv := &entity.Inventory{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		UpdatedAt:   uc.now(),
	}
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		product, err := r.Products.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		warehouse, err := r.Warehouses.GetByID(ctx, in.WarehouseID)
		if err != nil {
			return err
		}
		if product == nil || warehouse == nil {
			return domain.ErrNotFound
		}
		existing, err := r.Inventory.GetByProductAndWarehouse(ctx, in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		return r.Inventory.Create(ctx, inv)
	})
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// ListByWarehouse lista las filas de inventario de la bodega.
func (uc *UseCase) ListByWarehouse(ctx context.Context, warehouseID int64) (*dto.InventoryListResponse, error) {
	var list []*entity.Inventory
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		warehouse, err := r.Warehouses.GetByID(ctx, warehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		list, err = r.Inventory.ListByWarehouse(ctx, warehouseID)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInventoryResponse(inv))
	}
	return &dto.InventoryListResponse{Inventory: items}, nil
}

// Adjust aplica change a la fila y registra la entrada de historial en la misma transacción.
// La fila se bloquea (SELECT FOR UPDATE) para que ajustes concurrentes no se pisen.
// Un resultado negativo -> domain.ErrInsufficientStock; uno mayor a entity.MaxQuantity -> domain.ErrInvalidInput.
// En ambos casos no se escribe nada.
func (uc *UseCase) Adjust(ctx context.Context, inventoryID int64, in dto.AdjustInventoryRequest) (*dto.InventoryResponse, error) {
	if in.Change == 0 || in.Change > entity.MaxQuantity || in.Change < -entity.MaxQuantity {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.Inventory
	err := uc.store.WithTx(ctx, func(r repository.Repositories) error {
		inv, err := r.Inventory.GetForUpdate(ctx, inventoryID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		if inv.Exceeds(in.Change) {
			return domain.ErrInvalidInput
		}
		if !inv.CanApply(in.Change) {
			return domain.ErrInsufficientStock
		}
		now := uc.now()
		inv.Quantity += in.Change
		inv.UpdatedAt = now
		if err := r.Inventory.UpdateQuantity(ctx, inv.ID, inv.Quantity); err != nil {
			return err
		}
		entry := &entity.InventoryHistory{
			InventoryID: inv.ID,
			Change:      in.Change,
			Reason:      strings.TrimSpace(in.Reason),
			ChangedAt:   now,
		}
		if err := r.History.Append(ctx, entry); err != nil {
			return err
		}
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(out), nil
}

// History devuelve el historial de la fila, del más antiguo al más reciente.
func (uc *UseCase) History(ctx context.Context, inventoryID int64) (*dto.InventoryHistoryListResponse, error) {
	var list []*entity.InventoryHistory
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		inv, err := r.Inventory.GetByID(ctx, inventoryID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		list, err = r.History.ListByInventory(ctx, inventoryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryHistoryResponse, 0, len(list))
	for _, h := range list {
		items = append(items, dto.InventoryHistoryResponse{
			ID:          h.ID,
			InventoryID: h.InventoryID,
			Change:      h.Change,
			Reason:      h.Reason,
			ChangedAt:   h.ChangedAt,
		})
	}
	return &dto.InventoryHistoryListResponse{History: items}, nil
}

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ID:          inv.ID,
		ProductID:   inv.ProductID,
		WarehouseID: inv.WarehouseID,
		Quantity:    inv.Quantity,
		UpdatedAt:   inv.UpdatedAt,
	}
}
