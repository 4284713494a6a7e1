package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// ProductBundleRepository define el puerto para la composición de kits.
type ProductBundleRepository interface {
	Create(ctx context.Context, bundle *entity.ProductBundle) error
	ListByBundle(ctx context.Context, bundleID int64) ([]*entity.ProductBundle, error)
	// CountByProduct cuenta filas donde el producto aparece como kit o como componente.
	CountByProduct(ctx context.Context, productID int64) (int, error)
	DeleteByProduct(ctx context.Context, productID int64) error
}
