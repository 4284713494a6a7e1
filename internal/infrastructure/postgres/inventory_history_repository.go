package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.InventoryHistoryRepository = (*InventoryHistoryRepo)(nil)

// InventoryHistoryRepo registro de auditoría de inventario sobre PostgreSQL.
type InventoryHistoryRepo struct {
	q Querier
}

// NewInventoryHistoryRepository construye el adaptador. Pasar conexión o tx (Querier).
func NewInventoryHistoryRepository(q Querier) *InventoryHistoryRepo {
	return &InventoryHistoryRepo{q: q}
}

// Append inserta una entrada; el historial no se modifica después.
func (r *InventoryHistoryRepo) Append(ctx context.Context, entry *entity.InventoryHistory) error {
	query := `
		INSERT INTO inventory_history (inventory_id, change, reason, changed_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, entry.InventoryID, entry.Change, entry.Reason, entry.ChangedAt).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert inventory history: %w", err)
	}
	return nil
}

// ListByInventory devuelve el historial de la fila, del más antiguo al más reciente.
func (r *InventoryHistoryRepo) ListByInventory(ctx context.Context, inventoryID int64) ([]*entity.InventoryHistory, error) {
	query := `
		SELECT id, inventory_id, change, reason, changed_at
		FROM inventory_history WHERE inventory_id = $1
		ORDER BY changed_at, id`
	rows, err := r.q.Query(ctx, query, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list inventory history: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryHistory
	for rows.Next() {
		var h entity.InventoryHistory
		if err := rows.Scan(&h.ID, &h.InventoryID, &h.Change, &h.Reason, &h.ChangedAt); err != nil {
			return nil, fmt.Errorf("scan inventory history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// DeleteByProduct borra el historial de todas las filas de inventario del producto (borrado en cascada).
func (r *InventoryHistoryRepo) DeleteByProduct(ctx context.Context, productID int64) error {
	query := `
		DELETE FROM inventory_history
		WHERE inventory_id IN (SELECT id FROM inventory WHERE product_id = $1)`
	if _, err := r.q.Exec(ctx, query, productID); err != nil {
		return fmt.Errorf("delete inventory history by product: %w", err)
	}
	return nil
}
