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

// CompanyUseCase orquesta la lógica de negocio para Company (DIP: depende de la abstracción).
type CompanyUseCase struct {
	store repository.Store
}

// NewCompanyUseCase construye el caso de uso inyectando el store.
func NewCompanyUseCase(store repository.Store) *CompanyUseCase {
	return &CompanyUseCase{store: store}
}

// Create registra una nueva empresa.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	company := &entity.Company{Name: name, CreatedAt: time.Now()}
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		return r.Companies.Create(ctx, company)
	})
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID. Inexistente -> domain.ErrNotFound.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	var company *entity.Company
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		var err error
		company, err = r.Companies.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// List lista todas las empresas.
func (uc *CompanyUseCase) List(ctx context.Context) (*dto.CompanyListResponse, error) {
	var list []*entity.Company
	err := uc.store.WithSession(ctx, func(r repository.Repositories) error {
		var err error
		list, err = r.Companies.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Companies: items}, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}
