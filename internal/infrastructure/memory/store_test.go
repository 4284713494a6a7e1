package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
)

func seedWarehouse(t *testing.T, r repository.Repositories) *entity.Warehouse {
	t.Helper()
	ctx := context.Background()
	c := &entity.Company{Name: "ACME"}
	require.NoError(t, r.Companies.Create(ctx, c))
	w := &entity.Warehouse{CompanyID: c.ID, Name: "W1"}
	require.NoError(t, r.Warehouses.Create(ctx, w))
	return w
}

func TestProducts_SKUUnico(t *testing.T) {
	ctx := context.Background()
	r := memory.NewStore().Repositories()

	require.NoError(t, r.Products.Create(ctx, &entity.Product{Name: "A", SKU: "SKU-1", Price: decimal.NewFromInt(1)}))
	err := r.Products.Create(ctx, &entity.Product{Name: "B", SKU: "SKU-1", Price: decimal.NewFromInt(2)})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProducts_ListWithStockSumaBodegas(t *testing.T) {
	ctx := context.Background()
	r := memory.NewStore().Repositories()
	w1 := seedWarehouse(t, r)
	w2 := &entity.Warehouse{CompanyID: w1.CompanyID, Name: "W2"}
	require.NoError(t, r.Warehouses.Create(ctx, w2))

	p := &entity.Product{Name: "Widget", SKU: "WID-1"}
	require.NoError(t, r.Products.Create(ctx, p))
	empty := &entity.Product{Name: "Vacío", SKU: "EMP-1"}
	require.NoError(t, r.Products.Create(ctx, empty))
	require.NoError(t, r.Inventory.Create(ctx, &entity.Inventory{ProductID: p.ID, WarehouseID: w1.ID, Quantity: 5}))
	require.NoError(t, r.Inventory.Create(ctx, &entity.Inventory{ProductID: p.ID, WarehouseID: w2.ID, Quantity: 3}))

	list, err := r.Products.ListWithStock(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, p.ID, list[0].Product.ID)
	assert.Equal(t, 8, list[0].Stock)
	assert.Equal(t, 0, list[1].Stock)
}

func TestInventory_LlavesForaneasYUnicidad(t *testing.T) {
	ctx := context.Background()
	r := memory.NewStore().Repositories()
	w := seedWarehouse(t, r)
	p := &entity.Product{Name: "Widget", SKU: "WID-1"}
	require.NoError(t, r.Products.Create(ctx, p))

	assert.ErrorIs(t, r.Inventory.Create(ctx, &entity.Inventory{ProductID: 999, WarehouseID: w.ID}), domain.ErrNotFound)
	assert.ErrorIs(t, r.Inventory.Create(ctx, &entity.Inventory{ProductID: p.ID, WarehouseID: 999}), domain.ErrNotFound)
	require.NoError(t, r.Inventory.Create(ctx, &entity.Inventory{ProductID: p.ID, WarehouseID: w.ID, Quantity: 1}))
	assert.ErrorIs(t, r.Inventory.Create(ctx, &entity.Inventory{ProductID: p.ID, WarehouseID: w.ID}), domain.ErrDuplicate)

	// Borrar un producto referenciado se comporta como la FK de PostgreSQL.
	assert.ErrorIs(t, r.Products.Delete(ctx, p.ID), domain.ErrConflict)
}

func TestWithTx_RollbackRestauraEstado(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	boom := errors.New("boom")

	err := store.WithTx(ctx, func(r repository.Repositories) error {
		require.NoError(t, r.Suppliers.Create(ctx, &entity.Supplier{Name: "Temporal"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := store.Repositories().Suppliers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestWithTx_CommitConserva(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.WithTx(ctx, func(r repository.Repositories) error {
		return r.Suppliers.Create(ctx, &entity.Supplier{Name: "Supplier Corp"})
	}))

	first, err := store.Repositories().Suppliers.First(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "Supplier Corp", first.Name)
}

func TestWithSession_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := memory.NewStore().WithSession(ctx, func(repository.Repositories) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestProducts_UmbralNoSeComparte(t *testing.T) {
	ctx := context.Background()
	r := memory.NewStore().Repositories()
	threshold := 5
	p := &entity.Product{Name: "Widget", SKU: "WID-1", LowStockThreshold: &threshold}
	require.NoError(t, r.Products.Create(ctx, p))

	threshold = 50
	got, err := r.Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LowStockThreshold)
	assert.Equal(t, 5, *got.LowStockThreshold)
}
