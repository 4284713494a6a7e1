package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.Store = (*Store)(nil)

// Store entrega sesiones con alcance de una operación sobre el pool de PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el Store con el pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// WithSession toma una conexión del pool, ejecuta fn con repos atados a ella y la devuelve al terminar.
func (s *Store) WithSession(ctx context.Context, fn func(r repository.Repositories) error) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	return fn(newRepositories(conn))
}

// WithTx inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (s *Store) WithTx(ctx context.Context, fn func(r repository.Repositories) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(newRepositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func newRepositories(q Querier) repository.Repositories {
	return repository.Repositories{
		Companies:  NewCompanyRepository(q),
		Warehouses: NewWarehouseRepository(q),
		Products:   NewProductRepository(q),
		Inventory:  NewInventoryRepository(q),
		History:    NewInventoryHistoryRepository(q),
		Suppliers:  NewSupplierRepository(q),
		Bundles:    NewProductBundleRepository(q),
	}
}
