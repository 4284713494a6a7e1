package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DeletePolicy define qué pasa con el inventario y los kits de un producto al borrarlo.
type DeletePolicy string

const (
	// DeleteRestrict rechaza el borrado si el producto tiene inventario o kits asociados.
	DeleteRestrict DeletePolicy = "restrict"
	// DeleteCascade borra historial, inventario y kits del producto en la misma transacción.
	DeleteCascade DeletePolicy = "cascade"
)

// ProductUseCase casos de uso CRUD para el catálogo de productos.
type ProductUseCase struct {
	store        repository.Store
	deletePolicy DeletePolicy
}

// NewProductUseCase construye el caso de uso. Una política vacía equivale a DeleteRestrict.
func NewProductUseCase(store repository.Store, deletePolicy DeletePolicy) *ProductUseCase {
	if deletePolicy == "" {
		deletePolicy = DeleteRestrict
	}
	return &ProductUseCase{store: store, deletePolicy: deletePolicy}
}

// maxPrice límite exclusivo de NUMERIC(10,2).
var maxPrice = decimal.NewFromInt(100_000_000)

func validateProduct(in *dto.ProductRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	if in.Name == "" || in.SKU == "" {
		return domain.ErrInvalidInput
	}
	if err := validatePrice(in.Price); err != nil {
		return err
	}
	if in.LowStockThreshold != nil && !entity.ValidQuantity(*in.LowStockThreshold) {
		return domain.ErrInvalidInput
	}
	return nil
}

// validatePrice exige precio presente, no negativo, con a lo sumo dos decimales y menor a maxPrice.
func validatePrice(p *decimal.Decimal) error {
	if p == nil || p.IsNegative() || p.GreaterThanOrEqual(maxPrice) {
		return domain.ErrInvalidInput
	}
	if !p.Equal(p.Round(2)) {
		return domain.ErrInvalidInput
	}
	return nil
}

// List devuelve todos los productos con su stock total en todas las bodegas.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	var list []repository.ProductStock
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		var err error
		list, err = r.Products.ListWithStock(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductStockResponse, 0, len(list))
	for _, ps := range list {
		items = append(items, toProductStockResponse(ps))
	}
	return &dto.ProductListResponse{Products: items}, nil
}

// Create crea un producto. SKU ya existente -> domain.ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (int64, error) {
	if err := validateProduct(&in); err != nil {
		return 0, err
	}
	now := time.Now()
	product := &entity.Product{
		Name:              in.Name,
		SKU:               in.SKU,
		Price:             *in.Price,
		IsBundle:          in.IsBundle != nil && *in.IsBundle,
		LowStockThreshold: in.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		existing, err := r.Products.GetBySKU(ctx, in.SKU)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		return r.Products.Create(ctx, product)
	})
	if err != nil {
		return 0, err
	}
	return product.ID, nil
}

// Update reemplaza nombre, SKU, precio, is_bundle y umbral del producto (sin actualización parcial).
// ID inexistente -> domain.ErrNotFound; SKU de otro producto -> domain.ErrDuplicate.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (int64, error) {
	if err := validateProduct(&in); err != nil {
		return 0, err
	}
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		product, err := r.Products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.SKU != in.SKU {
			other, err := r.Products.GetBySKU(ctx, in.SKU)
			if err != nil {
				return err
			}
			if other != nil && other.ID != id {
				return domain.ErrDuplicate
			}
		}
		product.Name = in.Name
		product.SKU = in.SKU
		product.Price = *in.Price
		product.IsBundle = in.IsBundle != nil && *in.IsBundle
		product.LowStockThreshold = in.LowStockThreshold
		product.UpdatedAt = time.Now()
		return r.Products.Update(ctx, product)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Delete elimina un producto según la política de borrado configurada.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if uc.deletePolicy == DeleteCascade {
		return uc.store.WithTx(ctx, func(r repository.Repositories) error {
			product, err := r.Products.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if err := r.History.DeleteByProduct(ctx, id); err != nil {
				return err
			}
			if err := r.Inventory.DeleteByProduct(ctx, id); err != nil {
				return err
			}
			if err := r.Bundles.DeleteByProduct(ctx, id); err != nil {
				return err
			}
			return r.Products.Delete(ctx, id)
		})
	}

	return uc.store.WithSession(ctx, func(r repository.Repositories) error {
		product, err := r.Products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		rows, err := r.Inventory.CountByProduct(ctx, id)
		if err != nil {
			return err
		}
		bundles, err := r.Bundles.CountByProduct(ctx, id)
		if err != nil {
			return err
		}
		if rows > 0 || bundles > 0 {
			return domain.ErrConflict
		}
		return r.Products.Delete(ctx, id)
	})
}

func toProductStockResponse(ps repository.ProductStock) dto.ProductStockResponse {
	p := ps.Product
	return dto.ProductStockResponse{
		ID:                p.ID,
		Name:              p.Name,
		SKU:               p.SKU,
		Price:             p.Price.InexactFloat64(),
		IsBundle:          p.IsBundle,
		LowStockThreshold: p.LowStockThreshold,
		Stock:             ps.Stock,
	}
}
