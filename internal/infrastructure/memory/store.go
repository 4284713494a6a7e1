// Package memory implementa los puertos de persistencia en memoria de proceso.
// Reproduce las restricciones del esquema SQL (SKU único, llaves foráneas, cantidad no negativa)
// para que los casos de uso se comporten igual que sobre PostgreSQL.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.Store = (*Store)(nil)

type state struct {
	companies  map[int64]entity.Company
	warehouses map[int64]entity.Warehouse
	products   map[int64]entity.Product
	inventory  map[int64]entity.Inventory
	history    map[int64]entity.InventoryHistory
	suppliers  map[int64]entity.Supplier
	bundles    map[int64]entity.ProductBundle
	nextID     int64
}

func newState() *state {
	return &state{
		companies:  map[int64]entity.Company{},
		warehouses: map[int64]entity.Warehouse{},
		products:   map[int64]entity.Product{},
		inventory:  map[int64]entity.Inventory{},
		history:    map[int64]entity.InventoryHistory{},
		suppliers:  map[int64]entity.Supplier{},
		bundles:    map[int64]entity.ProductBundle{},
	}
}

func (s *state) clone() *state {
	return &state{
		companies:  maps.Clone(s.companies),
		warehouses: maps.Clone(s.warehouses),
		products:   maps.Clone(s.products),
		inventory:  maps.Clone(s.inventory),
		history:    maps.Clone(s.history),
		suppliers:  maps.Clone(s.suppliers),
		bundles:    maps.Clone(s.bundles),
		nextID:     s.nextID,
	}
}

func (s *state) id() int64 {
	s.nextID++
	return s.nextID
}

// Store es un almacén en memoria seguro para uso concurrente.
// Las transacciones se serializan entre sí y se deshacen restaurando una copia del estado.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	st   *state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// WithSession ejecuta fn con los repositorios del almacén.
func (s *Store) WithSession(ctx context.Context, fn func(r repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(s.repositories())
}

// WithTx ejecuta fn y, si falla, restaura el estado previo.
// Escrituras concurrentes fuera de transacción durante fn se pierden en el rollback.
func (s *Store) WithTx(ctx context.Context, fn func(r repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.st.clone()
	s.mu.RUnlock()

	if err := fn(s.repositories()); err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// Repositories expone los repositorios sin sesión (útil para sembrar datos en tests).
func (s *Store) Repositories() repository.Repositories {
	return s.repositories()
}

func (s *Store) repositories() repository.Repositories {
	return repository.Repositories{
		Companies:  companyRepo{s},
		Warehouses: warehouseRepo{s},
		Products:   productRepo{s},
		Inventory:  inventoryRepo{s},
		History:    historyRepo{s},
		Suppliers:  supplierRepo{s},
		Bundles:    bundleRepo{s},
	}
}
