package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

func TestSeed_GeneraAlertas(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, seed(ctx, store, logger.Nop()))

	companies, err := store.Repositories().Companies.List(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 1)

	report, err := alerts.NewEngine(store).LowStock(ctx, companies[0].ID)
	require.NoError(t, err)
	// WID-1 en Central (5 < 20), TOR-M4 en Central (150 < 200) y TAL-01 en Central (2 < 3).
	assert.Equal(t, 3, report.TotalAlerts)
	for _, a := range report.Alerts {
		assert.Equal(t, "Bodega Central", a.WarehouseName)
		require.NotNil(t, a.Supplier)
	}
}

func TestSeed_SegundaEjecucionOmiteProductos(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, seed(ctx, store, logger.Nop()))
	require.NoError(t, seed(ctx, store, logger.Nop()))

	list, err := store.Repositories().Products.ListWithStock(ctx)
	require.NoError(t, err)
	assert.Len(t, list, len(products))
}
