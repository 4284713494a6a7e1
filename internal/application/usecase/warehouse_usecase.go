package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso para bodegas.
type WarehouseUseCase struct {
	store repository.Store
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(store repository.Store) *WarehouseUseCase {
	return &WarehouseUseCase{store: store}
}

// Create crea una bodega para la empresa. Empresa inexistente -> domain.ErrNotFound.
func (uc *WarehouseUseCase) Create(ctx context.Context, companyID int64, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse := &entity.Warehouse{
		CompanyID: companyID,
		Name:      name,
		Address:   strings.TrimSpace(in.Address),
		CreatedAt: time.Now(),
	}
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		company, err := r.Companies.GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrNotFound
		}
		return r.Warehouses.Create(ctx, warehouse)
	})
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id int64) (*dto.WarehouseResponse, error) {
	var warehouse *entity.Warehouse
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		var err error
		warehouse, err = r.Warehouses.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// ListByCompany lista las bodegas de la empresa (vacío si la empresa no tiene o no existe).
func (uc *WarehouseUseCase) ListByCompany(ctx context.Context, companyID int64) (*dto.WarehouseListResponse, error) {
	var list []*entity.Warehouse
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		var err error
		list, err = r.Warehouses.ListByCompany(ctx, companyID)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{Warehouses: items}, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		CompanyID: w.CompanyID,
		Name:      w.Name,
		Address:   w.Address,
		CreatedAt: w.CreatedAt,
	}
}
