package usecase

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// BundleUseCase gestiona la composición de productos kit.
type BundleUseCase struct {
	store repository.Store
}

// NewBundleUseCase construye el caso de uso.
func NewBundleUseCase(store repository.Store) *BundleUseCase {
	return &BundleUseCase{store: store}
}

// AddComponent agrega Quantity unidades del producto componente al kit bundleID.
// El kit debe existir y tener is_bundle; el componente debe existir y ser distinto del kit.
func (uc *BundleUseCase) AddComponent(ctx context.Context, bundleID int64, in dto.AddBundleComponentRequest) (*dto.BundleComponentResponse, error) {
	if in.Quantity <= 0 || in.Quantity > entity.MaxQuantity || in.ProductID == bundleID {
		return nil, domain.ErrInvalidInput
	}
	row := &entity.ProductBundle{BundleID: bundleID, ComponentID: in.ProductID, Quantity: in.Quantity}
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		bundle, err := r.Products.GetByID(ctx, bundleID)
		if err != nil {
			return err
		}
		if bundle == nil {
			return domain.ErrNotFound
		}
		if !bundle.IsBundle {
			return domain.ErrInvalidInput
		}
		component, err := r.Products.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if component == nil {
			return domain.ErrNotFound
		}
		return r.Bundles.Create(ctx, row)
	})
	if err != nil {
		return nil, err
	}
	return toBundleComponentResponse(row), nil
}

// Components lista los componentes del kit. Kit inexistente -> domain.ErrNotFound.
func (uc *BundleUseCase) Components(ctx context.Context, bundleID int64) (*dto.BundleComponentListResponse, error) {
	var list []*entity.ProductBundle
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		bundle, err := r.Products.GetByID(ctx, bundleID)
		if err != nil {
			return err
		}
		if bundle == nil {
			return domain.ErrNotFound
		}
		list, err = r.Bundles.ListByBundle(ctx, bundleID)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.BundleComponentResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBundleComponentResponse(b))
	}
	return &dto.BundleComponentListResponse{Components: items}, nil
}

func toBundleComponentResponse(b *entity.ProductBundle) *dto.BundleComponentResponse {
	return &dto.BundleComponentResponse{
		ID:        b.ID,
		BundleID:  b.BundleID,
		ProductID: b.ComponentID,
		Quantity:  b.Quantity,
	}
}
