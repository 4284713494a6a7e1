package memory

import (
	"context"
	"maps"
	"slices"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var (
	_ repository.CompanyRepository          = companyRepo{}
	_ repository.WarehouseRepository        = warehouseRepo{}
	_ repository.ProductRepository          = productRepo{}
	_ repository.InventoryRepository        = inventoryRepo{}
	_ repository.InventoryHistoryRepository = historyRepo{}
	_ repository.SupplierRepository         = supplierRepo{}
	_ repository.ProductBundleRepository    = bundleRepo{}
)

// byID devuelve los valores del mapa que cumplen keep, ordenados por ID.
func byID[T any](m map[int64]T, keep func(T) bool) []*T {
	var out []*T
	for _, id := range slices.Sorted(maps.Keys(m)) {
		v := m[id]
		if keep == nil || keep(v) {
			out = append(out, &v)
		}
	}
	return out
}

type companyRepo struct{ s *Store }

func (r companyRepo) Create(_ context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.st.id()
	r.s.st.companies[c.ID] = *c
	return nil
}

func (r companyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.st.companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r companyRepo) List(_ context.Context) ([]*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return byID(r.s.st.companies, nil), nil
}

type warehouseRepo struct{ s *Store }

func (r warehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.companies[w.CompanyID]; !ok {
		return domain.ErrNotFound
	}
	w.ID = r.s.st.id()
	r.s.st.warehouses[w.ID] = *w
	return nil
}

func (r warehouseRepo) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, ok := r.s.st.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r warehouseRepo) ListByCompany(_ context.Context, companyID int64) ([]*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return byID(r.s.st.warehouses, func(w entity.Warehouse) bool { return w.CompanyID == companyID }), nil
}

type productRepo struct{ s *Store }

// copyProduct evita compartir el puntero del umbral entre el almacén y el llamador.
func copyProduct(p entity.Product) entity.Product {
	if p.LowStockThreshold != nil {
		t := *p.LowStockThreshold
		p.LowStockThreshold = &t
	}
	return p
}

func (r productRepo) skuTaken(sku string, exceptID int64) bool {
	for id, p := range r.s.st.products {
		if p.SKU == sku && id != exceptID {
			return true
		}
	}
	return false
}

func (r productRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.skuTaken(p.SKU, 0) {
		return domain.ErrDuplicate
	}
	p.ID = r.s.st.id()
	r.s.st.products[p.ID] = copyProduct(*p)
	return nil
}

func (r productRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.st.products[id]
	if !ok {
		return nil, nil
	}
	cp := copyProduct(p)
	return &cp, nil
}

func (r productRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.st.products {
		if p.SKU == sku {
			cp := copyProduct(p)
			return &cp, nil
		}
	}
	return nil, nil
}

func (r productRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.skuTaken(p.SKU, p.ID) {
		return domain.ErrDuplicate
	}
	r.s.st.products[p.ID] = copyProduct(*p)
	return nil
}

func (r productRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.products[id]; !ok {
		return domain.ErrNotFound
	}
	for _, inv := range r.s.st.inventory {
		if inv.ProductID == id {
			return domain.ErrConflict
		}
	}
	for _, b := range r.s.st.bundles {
		if b.BundleID == id || b.ComponentID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.st.products, id)
	return nil
}

func (r productRepo) ListWithStock(_ context.Context) ([]repository.ProductStock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	stock := make(map[int64]int, len(r.s.st.products))
	for _, inv := range r.s.st.inventory {
		stock[inv.ProductID] += inv.Quantity
	}
	var out []repository.ProductStock
	for _, p := range byID(r.s.st.products, nil) {
		cp := copyProduct(*p)
		out = append(out, repository.ProductStock{Product: &cp, Stock: stock[p.ID]})
	}
	return out, nil
}

type inventoryRepo struct{ s *Store }

func (r inventoryRepo) Create(_ context.Context, inv *entity.Inventory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.products[inv.ProductID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.st.warehouses[inv.WarehouseID]; !ok {
		return domain.ErrNotFound
	}
	if inv.Quantity < 0 {
		return domain.ErrInvalidInput
	}
	for _, cur := range r.s.st.inventory {
		if cur.ProductID == inv.ProductID && cur.WarehouseID == inv.WarehouseID {
			return domain.ErrDuplicate
		}
	}
	inv.ID = r.s.st.id()
	r.s.st.inventory[inv.ID] = *inv
	return nil
}

func (r inventoryRepo) GetByID(_ context.Context, id int64) (*entity.Inventory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	inv, ok := r.s.st.inventory[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

// GetForUpdate equivale a GetByID: las transacciones en memoria ya están serializadas.
func (r inventoryRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Inventory, error) {
	return r.GetByID(ctx, id)
}

func (r inventoryRepo) GetByProductAndWarehouse(_ context.Context, productID, warehouseID int64) (*entity.Inventory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, inv := range r.s.st.inventory {
		if inv.ProductID == productID && inv.WarehouseID == warehouseID {
			return &inv, nil
		}
	}
	return nil, nil
}

func (r inventoryRepo) UpdateQuantity(_ context.Context, id int64, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.st.inventory[id]
	if !ok {
		return domain.ErrNotFound
	}
	if quantity < 0 {
		return domain.ErrInvalidInput
	}
	inv.Quantity = quantity
	r.s.st.inventory[id] = inv
	return nil
}

func (r inventoryRepo) ListByWarehouse(_ context.Context, warehouseID int64) ([]*entity.Inventory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return byID(r.s.st.inventory, func(i entity.Inventory) bool { return i.WarehouseID == warehouseID }), nil
}

func (r inventoryRepo) CountByProduct(_ context.Context, productID int64) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, inv := range r.s.st.inventory {
		if inv.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (r inventoryRepo) DeleteByProduct(_ context.Context, productID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, inv := range r.s.st.inventory {
		if inv.ProductID == productID {
			delete(r.s.st.inventory, id)
		}
	}
	return nil
}

type historyRepo struct{ s *Store }

func (r historyRepo) Append(_ context.Context, h *entity.InventoryHistory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.inventory[h.InventoryID]; !ok {
		return domain.ErrNotFound
	}
	h.ID = r.s.st.id()
	r.s.st.history[h.ID] = *h
	return nil
}

// ListByInventory ordena por ID, que en memoria sigue el orden de inserción.
func (r historyRepo) ListByInventory(_ context.Context, inventoryID int64) ([]*entity.InventoryHistory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return byID(r.s.st.history, func(h entity.InventoryHistory) bool { return h.InventoryID == inventoryID }), nil
}

func (r historyRepo) DeleteByProduct(_ context.Context, productID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, h := range r.s.st.history {
		if inv, ok := r.s.st.inventory[h.InventoryID]; ok && inv.ProductID == productID {
			delete(r.s.st.history, id)
		}
	}
	return nil
}

type supplierRepo struct{ s *Store }

func (r supplierRepo) Create(_ context.Context, sup *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sup.ID = r.s.st.id()
	r.s.st.suppliers[sup.ID] = *sup
	return nil
}

func (r supplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sup, ok := r.s.st.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &sup, nil
}

func (r supplierRepo) First(_ context.Context) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := byID(r.s.st.suppliers, nil)
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (r supplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return byID(r.s.st.suppliers, nil), nil
}

type bundleRepo struct{ s *Store }

func (r bundleRepo) Create(_ context.Context, b *entity.ProductBundle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.products[b.BundleID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.st.products[b.ComponentID]; !ok {
		return domain.ErrNotFound
	}
	for _, cur := range r.s.st.bundles {
		if cur.BundleID == b.BundleID && cur.ComponentID == b.ComponentID {
			return domain.ErrDuplicate
		}
	}
	b.ID = r.s.st.id()
	r.s.st.bundles[b.ID] = *b
	return nil
}

func (r bundleRepo) ListByBundle(_ context.Context, bundleID int64) ([]*entity.ProductBundle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return byID(r.s.st.bundles, func(b entity.ProductBundle) bool { return b.BundleID == bundleID }), nil
}

func (r bundleRepo) CountByProduct(_ context.Context, productID int64) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, b := range r.s.st.bundles {
		if b.BundleID == productID || b.ComponentID == productID {
			n++
		}
	}
	return n, nil
}

func (r bundleRepo) DeleteByProduct(_ context.Context, productID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, b := range r.s.st.bundles {
		if b.BundleID == productID || b.ComponentID == productID {
			delete(r.s.st.bundles, id)
		}
	}
	return nil
}
