package alerts

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
)

type seed struct {
	store   *memory.Store
	company *entity.Company
}

func newSeed(t *testing.T) seed {
	t.Helper()
	store := memory.NewStore()
	c := &entity.Company{Name: "ACME"}
	require.NoError(t, store.Repositories().Companies.Create(context.Background(), c))
	return seed{store: store, company: c}
}

func (s seed) warehouse(t *testing.T, name string) *entity.Warehouse {
	t.Helper()
	w := &entity.Warehouse{CompanyID: s.company.ID, Name: name}
	require.NoError(t, s.store.Repositories().Warehouses.Create(context.Background(), w))
	return w
}

func (s seed) product(t *testing.T, name, sku string, threshold *int) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, SKU: sku, LowStockThreshold: threshold}
	require.NoError(t, s.store.Repositories().Products.Create(context.Background(), p))
	return p
}

func (s seed) stock(t *testing.T, p *entity.Product, w *entity.Warehouse, qty int) *entity.Inventory {
	t.Helper()
	inv := &entity.Inventory{ProductID: p.ID, WarehouseID: w.ID, Quantity: qty}
	require.NoError(t, s.store.Repositories().Inventory.Create(context.Background(), inv))
	return inv
}

func (s seed) supplier(t *testing.T, name string) *entity.Supplier {
	t.Helper()
	sup := &entity.Supplier{Name: name, ContactEmail: "compras@" + name + ".co"}
	require.NoError(t, s.store.Repositories().Suppliers.Create(context.Background(), sup))
	return sup
}

func intPtr(n int) *int { return &n }

func TestLowStock_UnaAlertaBajoUmbralPorDefecto(t *testing.T) {
	s := newSeed(t)
	w := s.warehouse(t, "W1")
	p := s.product(t, "Widget", "WID-1", nil)
	s.stock(t, p, w, 5)
	sup := s.supplier(t, "acme")

	report, err := NewEngine(s.store).LowStock(context.Background(), s.company.ID)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 1)
	assert.Equal(t, 1, report.TotalAlerts)

	a := report.Alerts[0]
	assert.Equal(t, p.ID, a.ProductID)
	assert.Equal(t, "Widget", a.ProductName)
	assert.Equal(t, "WID-1", a.SKU)
	assert.Equal(t, w.ID, a.WarehouseID)
	assert.Equal(t, "W1", a.WarehouseName)
	assert.Equal(t, 5, a.CurrentStock)
	assert.Equal(t, 20, a.Threshold)
	assert.Equal(t, 12, a.DaysUntilStockout)
	require.NotNil(t, a.Supplier)
	assert.Equal(t, sup.ID, a.Supplier.ID)
	assert.Equal(t, "compras@acme.co", a.Supplier.ContactEmail)
}

func TestLowStock_SinBodegas(t *testing.T) {
	s := newSeed(t)

	report, err := NewEngine(s.store).LowStock(context.Background(), s.company.ID)
	require.NoError(t, err)
	require.NotNil(t, report.Alerts)
	assert.Empty(t, report.Alerts)
	assert.Zero(t, report.TotalAlerts)

	report, err = NewEngine(s.store).LowStock(context.Background(), 9999)
	require.NoError(t, err)
	assert.Empty(t, report.Alerts)
}

func TestLowStock_UmbralEstricto(t *testing.T) {
	s := newSeed(t)
	w := s.warehouse(t, "W1")
	s.stock(t, s.product(t, "En umbral", "A", nil), w, 20)
	s.stock(t, s.product(t, "Bajo umbral", "B", nil), w, 19)
	s.stock(t, s.product(t, "Umbral propio", "C", intPtr(3)), w, 5)
	s.stock(t, s.product(t, "Propio bajo", "D", intPtr(10)), w, 9)

	report, err := NewEngine(s.store).LowStock(context.Background(), s.company.ID)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 2)
	assert.Equal(t, "B", report.Alerts[0].SKU)
	assert.Equal(t, "D", report.Alerts[1].SKU)
	assert.Equal(t, 10, report.Alerts[1].Threshold)
}

func TestLowStock_OrdenBodegaLuegoFila(t *testing.T) {
	s := newSeed(t)
	w1 := s.warehouse(t, "W1")
	w2 := s.warehouse(t, "W2")
	p1 := s.product(t, "P1", "P1", nil)
	p2 := s.product(t, "P2", "P2", nil)
	s.stock(t, p2, w2, 1)
	s.stock(t, p1, w1, 2)
	s.stock(t, p2, w1, 3)

	report, err := NewEngine(s.store).LowStock(context.Background(), s.company.ID)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 3)
	got := [][2]int64{}
	for _, a := range report.Alerts {
		got = append(got, [2]int64{a.WarehouseID, a.ProductID})
	}
	assert.Equal(t, [][2]int64{{w1.ID, p1.ID}, {w1.ID, p2.ID}, {w2.ID, p2.ID}}, got)
}

func TestLowStock_PoliticasConfigurables(t *testing.T) {
	s := newSeed(t)
	w := s.warehouse(t, "W1")
	p := s.product(t, "Widget", "WID-1", nil)
	s.stock(t, p, w, 5)
	s.supplier(t, "acme")

	engine := NewEngine(s.store,
		WithDefaultThreshold(5),
		WithSupplierSelector(NoSupplier),
		WithStockoutEstimator(ConstantStockout(3)),
	)
	report, err := engine.LowStock(context.Background(), s.company.ID)
	require.NoError(t, err)
	assert.Empty(t, report.Alerts, "5 no es menor que el umbral 5")

	engine = NewEngine(s.store,
		WithDefaultThreshold(6),
		WithSupplierSelector(NoSupplier),
		WithStockoutEstimator(ConstantStockout(3)),
	)
	report, err = engine.LowStock(context.Background(), s.company.ID)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 1)
	assert.Nil(t, report.Alerts[0].Supplier)
	assert.Equal(t, 3, report.Alerts[0].DaysUntilStockout)
}

func TestLowStock_SinVentasRecientesNoAlerta(t *testing.T) {
	s := newSeed(t)
	w := s.warehouse(t, "W1")
	quiet := s.product(t, "Quieto", "Q", nil)
	s.stock(t, quiet, w, 1)
	s.stock(t, s.product(t, "Vendido", "V", nil), w, 1)

	activity := SalesActivityFunc(func(_ context.Context, p *entity.Product) (bool, error) {
		return p.ID != quiet.ID, nil
	})
	report, err := NewEngine(s.store, WithSalesActivity(activity)).LowStock(context.Background(), s.company.ID)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 1)
	assert.Equal(t, "V", report.Alerts[0].SKU)
}

func TestLowStock_ErrorDeSenalSePropaga(t *testing.T) {
	s := newSeed(t)
	w := s.warehouse(t, "W1")
	s.stock(t, s.product(t, "Widget", "WID-1", nil), w, 1)
	boom := errors.New("boom")

	activity := SalesActivityFunc(func(context.Context, *entity.Product) (bool, error) { return false, boom })
	_, err := NewEngine(s.store, WithSalesActivity(activity)).LowStock(context.Background(), s.company.ID)
	assert.ErrorIs(t, err, boom)
}

// danglingStore oculta un producto para simular una fila de inventario huérfana.
type danglingStore struct {
	*memory.Store
	hidden int64
}

type hidingProducts struct {
	repository.ProductRepository
	hidden int64
}

func (h hidingProducts) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	if id == h.hidden {
		return nil, nil
	}
	return h.ProductRepository.GetByID(ctx, id)
}

func (d danglingStore) WithSession(ctx context.Context, fn func(r repository.Repositories) error) error {
	return d.Store.WithSession(ctx, func(r repository.Repositories) error {
		r.Products = hidingProducts{ProductRepository: r.Products, hidden: d.hidden}
		return fn(r)
	})
}

func TestLowStock_OmiteFilasSinProducto(t *testing.T) {
	s := newSeed(t)
	w := s.warehouse(t, "W1")
	gone := s.product(t, "Borrado", "X", nil)
	s.stock(t, gone, w, 1)
	s.stock(t, s.product(t, "Widget", "WID-1", nil), w, 1)

	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	engine := NewEngine(danglingStore{Store: s.store, hidden: gone.ID}, WithLogger(log))

	report, err := engine.LowStock(context.Background(), s.company.ID)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 1)
	assert.Equal(t, "WID-1", report.Alerts[0].SKU)
	assert.Contains(t, buf.String(), "fila de inventario sin producto")
}
