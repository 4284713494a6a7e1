//go:build integration

// Ejecutar con: DATABASE_URL=postgres://... go test -tags integration ./internal/infrastructure/postgres/
package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockflow-api/pkg/config"
)

func newTestStore(t *testing.T) *postgres.Store {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(ctx, pool))
	return postgres.NewStore(pool)
}

// fixture crea empresa, dos bodegas y un producto con SKU único por ejecución.
type fixture struct {
	products   *usecase.ProductUseCase
	levels     *inventory.UseCase
	productID  int64
	warehouses []int64
}

func newFixture(t *testing.T, store repository.Store, policy usecase.DeletePolicy) fixture {
	t.Helper()
	ctx := context.Background()
	company, err := usecase.NewCompanyUseCase(store).Create(ctx, dto.CreateCompanyRequest{Name: "ACME"})
	require.NoError(t, err)

	f := fixture{products: usecase.NewProductUseCase(store, policy), levels: inventory.NewUseCase(store)}
	for _, name := range []string{"W1", "W2"} {
		w, err := usecase.NewWarehouseUseCase(store).Create(ctx, company.ID, dto.CreateWarehouseRequest{Name: name})
		require.NoError(t, err)
		f.warehouses = append(f.warehouses, w.ID)
	}
	price := decimal.RequireFromString("1.25")
	f.productID, err = f.products.Create(ctx, dto.ProductRequest{Name: "Widget", SKU: "IT-" + uuid.NewString(), Price: &price})
	require.NoError(t, err)
	return f
}

func (f fixture) stock(t *testing.T, warehouseIdx, qty int) *dto.InventoryResponse {
	t.Helper()
	inv, err := f.levels.Create(context.Background(), dto.CreateInventoryRequest{
		ProductID: f.productID, WarehouseID: f.warehouses[warehouseIdx], Quantity: qty,
	})
	require.NoError(t, err)
	return inv
}

func findStock(t *testing.T, list *dto.ProductListResponse, id int64) dto.ProductStockResponse {
	t.Helper()
	for _, p := range list.Products {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("producto %d no listado", id)
	return dto.ProductStockResponse{}
}

func TestListWithStock_SumaBodegas(t *testing.T) {
	store := newTestStore(t)
	f := newFixture(t, store, usecase.DeleteCascade)
	ctx := context.Background()
	f.stock(t, 0, 5)
	f.stock(t, 1, 3)

	list, err := f.products.List(ctx)
	require.NoError(t, err)
	p := findStock(t, list, f.productID)
	assert.Equal(t, 8, p.Stock)
	assert.Equal(t, 1.25, p.Price)

	require.NoError(t, f.products.Delete(ctx, f.productID))
}

func TestDelete_RestrictConInventario(t *testing.T) {
	store := newTestStore(t)
	f := newFixture(t, store, usecase.DeleteRestrict)
	ctx := context.Background()
	f.stock(t, 0, 1)

	assert.ErrorIs(t, f.products.Delete(ctx, f.productID), domain.ErrConflict)

	list, err := f.products.List(ctx)
	require.NoError(t, err)
	findStock(t, list, f.productID)

	require.NoError(t, usecase.NewProductUseCase(store, usecase.DeleteCascade).Delete(ctx, f.productID))
}

func TestDelete_CascadeBorraInventarioEHistorial(t *testing.T) {
	store := newTestStore(t)
	f := newFixture(t, store, usecase.DeleteCascade)
	ctx := context.Background()
	inv := f.stock(t, 0, 4)
	_, err := f.levels.Adjust(ctx, inv.ID, dto.AdjustInventoryRequest{Change: -1, Reason: "venta"})
	require.NoError(t, err)

	isBundle := true
	price := decimal.RequireFromString("9.99")
	kitID, err := f.products.Create(ctx, dto.ProductRequest{Name: "Kit", SKU: "IT-" + uuid.NewString(), Price: &price, IsBundle: &isBundle})
	require.NoError(t, err)
	bundles := usecase.NewBundleUseCase(store)
	_, err = bundles.AddComponent(ctx, kitID, dto.AddBundleComponentRequest{ProductID: f.productID, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, f.products.Delete(ctx, f.productID))

	_, err = f.levels.History(ctx, inv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.products.Delete(ctx, f.productID), domain.ErrNotFound)

	components, err := bundles.Components(ctx, kitID)
	require.NoError(t, err)
	assert.Empty(t, components.Components)

	require.NoError(t, f.products.Delete(ctx, kitID))
}
