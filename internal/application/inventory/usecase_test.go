package inventory

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
)

type fixture struct {
	uc        *UseCase
	store     *memory.Store
	product   *entity.Product
	warehouse *entity.Warehouse
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	r := store.Repositories()

	c := &entity.Company{Name: "ACME"}
	require.NoError(t, r.Companies.Create(ctx, c))
	w := &entity.Warehouse{CompanyID: c.ID, Name: "W1"}
	require.NoError(t, r.Warehouses.Create(ctx, w))
	p := &entity.Product{Name: "Widget", SKU: "WID-1"}
	require.NoError(t, r.Products.Create(ctx, p))

	uc := NewUseCase(store)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	uc.now = func() time.Time { return fixed }
	return fixture{uc: uc, store: store, product: p, warehouse: w}
}

func TestCreate_ValidaReferencias(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, dto.CreateInventoryRequest{ProductID: f.product.ID, WarehouseID: 999, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Create(ctx, dto.CreateInventoryRequest{ProductID: f.product.ID, WarehouseID: f.warehouse.ID, Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := f.uc.Create(ctx, dto.CreateInventoryRequest{ProductID: f.product.ID, WarehouseID: f.warehouse.ID, Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)

	_, err = f.uc.Create(ctx, dto.CreateInventoryRequest{ProductID: f.product.ID, WarehouseID: f.warehouse.ID, Quantity: 3})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAdjust_ActualizaCantidadYRegistraHistorial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv, err := f.uc.Create(ctx, dto.CreateInventoryRequest{ProductID: f.product.ID, WarehouseID: f.warehouse.ID, Quantity: 10})
	require.NoError(t, err)

	out, err := f.uc.Adjust(ctx, inv.ID, dto.AdjustInventoryRequest{Change: -4, Reason: " venta "})
	require.NoError(t, err)
	assert.Equal(t, 6, out.Quantity)

	_, err = f.uc.Adjust(ctx, inv.ID, dto.AdjustInventoryRequest{Change: 2, Reason: "recepción"})
	require.NoError(t, err)

	hist, err := f.uc.History(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, hist.History, 2)
	assert.Equal(t, -4, hist.History[0].Change)
	assert.Equal(t, "venta", hist.History[0].Reason)
	assert.Equal(t, 2, hist.History[1].Change)
}

func TestAdjust_StockInsuficienteNoEscribe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv, err := f.uc.Create(ctx, dto.CreateInventoryRequest{ProductID: f.product.ID, WarehouseID: f.warehouse.ID, Quantity: 3})
	require.NoError(t, err)

	_, err = f.uc.Adjust(ctx, inv.ID, dto.AdjustInventoryRequest{Change: -5})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, err := f.store.Repositories().Inventory.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)
	hist, err := f.uc.History(ctx, inv.ID)
	require.NoError(t, err)
	assert.Empty(t, hist.History)
}

func TestAdjust_FilaInexistenteYCambioCero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Adjust(ctx, 12345, dto.AdjustInventoryRequest{Change: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Adjust(ctx, 12345, dto.AdjustInventoryRequest{Change: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListByWarehouse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.Create(ctx, dto.CreateInventoryRequest{ProductID: f.product.ID, WarehouseID: f.warehouse.ID, Quantity: 7})
	require.NoError(t, err)

	list, err := f.uc.ListByWarehouse(ctx, f.warehouse.ID)
	require.NoError(t, err)
	require.Len(t, list.Inventory, 1)
	assert.Equal(t, 7, list.Inventory[0].Quantity)

	_, err = f.uc.ListByWarehouse(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjust_LimitesDeCantidad(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv, err := f.uc.Create(ctx, dto.CreateInventoryRequest{ProductID: f.product.ID, WarehouseID: f.warehouse.ID, Quantity: 5})
	require.NoError(t, err)

	_, err = f.uc.Adjust(ctx, inv.ID, dto.AdjustInventoryRequest{Change: math.MaxInt})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Adjust(ctx, inv.ID, dto.AdjustInventoryRequest{Change: math.MinInt})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Adjust(ctx, inv.ID, dto.AdjustInventoryRequest{Change: entity.MaxQuantity - 4})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "5 + (MaxQuantity-4) supera el tope")

	out, err := f.uc.Adjust(ctx, inv.ID, dto.AdjustInventoryRequest{Change: entity.MaxQuantity - 5})
	require.NoError(t, err)
	assert.Equal(t, entity.MaxQuantity, out.Quantity)

	_, err = f.uc.Adjust(ctx, inv.ID, dto.AdjustInventoryRequest{Change: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	hist, err := f.uc.History(ctx, inv.ID)
	require.NoError(t, err)
	assert.Len(t, hist.History, 1)
}

func TestCreate_CantidadSobreElTope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, dto.CreateInventoryRequest{ProductID: f.product.ID, WarehouseID: f.warehouse.ID, Quantity: entity.MaxQuantity + 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := f.uc.Create(ctx, dto.CreateInventoryRequest{ProductID: f.product.ID, WarehouseID: f.warehouse.ID, Quantity: entity.MaxQuantity})
	require.NoError(t, err)
	assert.Equal(t, entity.MaxQuantity, out.Quantity)
}
