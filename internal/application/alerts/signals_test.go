package alerts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

func TestSupplierSelectorFor(t *testing.T) {
	s := newSeed(t)
	r := s.store.Repositories()
	ctx := context.Background()
	p := &entity.Product{ID: 1}

	got, err := SupplierSelectorFor("first").Select(ctx, r, p)
	require.NoError(t, err)
	assert.Nil(t, got, "sin proveedores registrados")

	first := s.supplier(t, "uno")
	s.supplier(t, "dos")

	got, err = SupplierSelectorFor("first").Select(ctx, r, p)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)

	got, err = SupplierSelectorFor("none").Select(ctx, r, p)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSenalesPorDefecto(t *testing.T) {
	ctx := context.Background()
	active, err := AlwaysActive.HasRecentSales(ctx, &entity.Product{})
	require.NoError(t, err)
	assert.True(t, active)

	assert.Equal(t, 7, ConstantStockout(7).DaysUntilStockout(ctx, &entity.Product{}, &entity.Inventory{Quantity: 1}))
}
