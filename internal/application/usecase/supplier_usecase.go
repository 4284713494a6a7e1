package usecase

import (
	"context"
	"net/mail"
	"strings"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// SupplierUseCase casos de uso para proveedores.
type SupplierUseCase struct {
	store repository.Store
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(store repository.Store) *SupplierUseCase {
	return &SupplierUseCase{store: store}
}

// Create registra un proveedor. El email es opcional pero, si viene, debe ser una dirección válida.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.ContactEmail)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	supplier := &entity.Supplier{Name: name, ContactEmail: email}
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		return r.Suppliers.Create(ctx, supplier)
	})
	if err != nil {
		return nil, err
	}
	return ToSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	var supplier *entity.Supplier
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		var err error
		supplier, err = r.Suppliers.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return ToSupplierResponse(supplier), nil
}

// List lista todos los proveedores.
func (uc *SupplierUseCase) List(ctx context.Context) (*dto.SupplierListResponse, error) {
	var list []*entity.Supplier
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		var err error
		list, err = r.Suppliers.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Suppliers: items}, nil
}

// ToSupplierResponse convierte la entidad en su DTO; nil produce nil.
func ToSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{ID: s.ID, Name: s.Name, ContactEmail: s.ContactEmail}
}
