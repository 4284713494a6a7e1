package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.ProductBundleRepository = (*ProductBundleRepo)(nil)

// ProductBundleRepo composición de kits sobre PostgreSQL.
// bundle_id y product_id son dos llaves foráneas independientes a products.
type ProductBundleRepo struct {
	q Querier
}

// NewProductBundleRepository construye el adaptador. Pasar conexión o tx (Querier).
func NewProductBundleRepository(q Querier) *ProductBundleRepo {
	return &ProductBundleRepo{q: q}
}

// Create agrega un componente al kit. Componente repetido en el mismo kit -> domain.ErrDuplicate.
func (r *ProductBundleRepo) Create(ctx context.Context, b *entity.ProductBundle) error {
	query := `
		INSERT INTO product_bundles (bundle_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, b.BundleID, b.ComponentID, b.Quantity).Scan(&b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert product bundle: %w", err)
	}
	return nil
}

// ListByBundle lista los componentes del kit ordenados por ID.
func (r *ProductBundleRepo) ListByBundle(ctx context.Context, bundleID int64) ([]*entity.ProductBundle, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, bundle_id, product_id, quantity FROM product_bundles WHERE bundle_id = $1 ORDER BY id`, bundleID)
	if err != nil {
		return nil, fmt.Errorf("list product bundles: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductBundle
	for rows.Next() {
		var b entity.ProductBundle
		if err := rows.Scan(&b.ID, &b.BundleID, &b.ComponentID, &b.Quantity); err != nil {
			return nil, fmt.Errorf("scan product bundle: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

func (r *ProductBundleRepo) CountByProduct(ctx context.Context, productID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM product_bundles WHERE bundle_id = $1 OR product_id = $1`, productID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count product bundles: %w", err)
	}
	return n, nil
}

func (r *ProductBundleRepo) DeleteByProduct(ctx context.Context, productID int64) error {
	if _, err := r.q.Exec(ctx,
		`DELETE FROM product_bundles WHERE bundle_id = $1 OR product_id = $1`, productID); err != nil {
		return fmt.Errorf("delete product bundles: %w", err)
	}
	return nil
}
