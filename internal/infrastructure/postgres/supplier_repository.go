package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor y asigna su ID.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO suppliers (name, contact_email) VALUES ($1, $2) RETURNING id`,
		supplier.Name, supplier.ContactEmail,
	).Scan(&supplier.ID)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := r.q.QueryRow(ctx, query, args...).Scan(&s.ID, &s.Name, &s.ContactEmail); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	return r.getOne(ctx, `SELECT id, name, contact_email FROM suppliers WHERE id = $1`, id)
}

// First devuelve el proveedor de menor ID.
func (r *SupplierRepo) First(ctx context.Context) (*entity.Supplier, error) {
	return r.getOne(ctx, `SELECT id, name, contact_email FROM suppliers ORDER BY id LIMIT 1`)
}

// List lista todos los proveedores ordenados por ID.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, contact_email FROM suppliers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactEmail); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
