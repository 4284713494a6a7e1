package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, product_id, warehouse_id, quantity, updated_at`

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Acepta conexión o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func scanInventory(row pgx.Row, i *entity.Inventory) error {
	return row.Scan(&i.ID, &i.ProductID, &i.WarehouseID, &i.Quantity, &i.UpdatedAt)
}

// Create inserta una fila de inventario. Par producto+bodega repetido -> domain.ErrDuplicate.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, inv.ProductID, inv.WarehouseID, inv.Quantity, inv.UpdatedAt).Scan(&inv.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) get(ctx context.Context, query string, args ...any) (*entity.Inventory, error) {
	var i entity.Inventory
	if err := scanInventory(r.q.QueryRow(ctx, query, args...), &i); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &i, nil
}

func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*entity.Inventory, error) {
	return r.get(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE id = $1`, id)
}

// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE). Solo tiene efecto dentro de una tx.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Inventory, error) {
	return r.get(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE id = $1 FOR UPDATE`, id)
}

func (r *InventoryRepo) GetByProductAndWarehouse(ctx context.Context, productID, warehouseID int64) (*entity.Inventory, error) {
	return r.get(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE product_id = $1 AND warehouse_id = $2`,
		productID, warehouseID)
}

func (r *InventoryRepo) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	cmd, err := r.q.Exec(ctx, `UPDATE inventory SET quantity = $2, updated_at = now() WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InventoryRepo) ListByWarehouse(ctx context.Context, warehouseID int64) ([]*entity.Inventory, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+inventoryColumns+` FROM inventory WHERE warehouse_id = $1 ORDER BY id`, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list inventory by warehouse: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var i entity.Inventory
		if err := scanInventory(rows, &i); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

func (r *InventoryRepo) CountByProduct(ctx context.Context, productID int64) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM inventory WHERE product_id = $1`, productID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count inventory: %w", err)
	}
	return n, nil
}

func (r *InventoryRepo) DeleteByProduct(ctx context.Context, productID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM inventory WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("delete inventory by product: %w", err)
	}
	return nil
}
