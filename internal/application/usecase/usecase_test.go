package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
)

func TestCompanyYWarehouse(t *testing.T) {
	store := memory.NewStore()
	companies := NewCompanyUseCase(store)
	warehouses := NewWarehouseUseCase(store)
	ctx := context.Background()

	_, err := companies.Create(ctx, dto.CreateCompanyRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	c, err := companies.Create(ctx, dto.CreateCompanyRequest{Name: "ACME"})
	require.NoError(t, err)
	got, err := companies.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "ACME", got.Name)

	_, err = companies.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = warehouses.Create(ctx, 999, dto.CreateWarehouseRequest{Name: "W1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	w1, err := warehouses.Create(ctx, c.ID, dto.CreateWarehouseRequest{Name: "W1", Address: "Calle 1"})
	require.NoError(t, err)
	_, err = warehouses.Create(ctx, c.ID, dto.CreateWarehouseRequest{Name: "W2"})
	require.NoError(t, err)

	list, err := warehouses.ListByCompany(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list.Warehouses, 2)
	assert.Equal(t, w1.ID, list.Warehouses[0].ID)
	assert.Equal(t, "Calle 1", list.Warehouses[0].Address)
}

func TestSupplierUseCase(t *testing.T) {
	uc := NewSupplierUseCase(memory.NewStore())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Proveedor", ContactEmail: "no-es-email"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	s, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Proveedor", ContactEmail: "ventas@proveedor.co"})
	require.NoError(t, err)
	assert.Equal(t, "ventas@proveedor.co", s.ContactEmail)

	_, err = uc.Create(ctx, dto.CreateSupplierRequest{Name: "Sin email"})
	require.NoError(t, err)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Suppliers, 2)

	_, err = uc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Nil(t, ToSupplierResponse(nil))
}

func TestBundleUseCase(t *testing.T) {
	store := memory.NewStore()
	products := NewProductUseCase(store, DeleteRestrict)
	bundles := NewBundleUseCase(store)
	ctx := context.Background()

	isBundle := true
	kitReq := productReq("Kit", "KIT-1")
	kitReq.IsBundle = &isBundle
	kitID, err := products.Create(ctx, kitReq)
	require.NoError(t, err)
	partID, err := products.Create(ctx, productReq("Tornillo", "TOR-1"))
	require.NoError(t, err)

	_, err = bundles.AddComponent(ctx, partID, dto.AddBundleComponentRequest{ProductID: kitID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el producto destino no es un kit")

	_, err = bundles.AddComponent(ctx, kitID, dto.AddBundleComponentRequest{ProductID: kitID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = bundles.AddComponent(ctx, kitID, dto.AddBundleComponentRequest{ProductID: partID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = bundles.AddComponent(ctx, kitID, dto.AddBundleComponentRequest{ProductID: 999, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	row, err := bundles.AddComponent(ctx, kitID, dto.AddBundleComponentRequest{ProductID: partID, Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, kitID, row.BundleID)

	list, err := bundles.Components(ctx, kitID)
	require.NoError(t, err)
	require.Len(t, list.Components, 1)
	assert.Equal(t, 4, list.Components[0].Quantity)

	_, err = bundles.Components(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
