package repository

import "context"

// Repositories agrupa los repositorios atados a una misma sesión o transacción.
type Repositories struct {
	Companies  CompanyRepository
	Warehouses WarehouseRepository
	Products   ProductRepository
	Inventory  InventoryRepository
	History    InventoryHistoryRepository
	Suppliers  SupplierRepository
	Bundles    ProductBundleRepository
}

// Store entrega sesiones de persistencia con alcance acotado a una operación.
// La sesión se libera al retornar fn, también si fn falla.
type Store interface {
	// WithSession ejecuta fn con repositorios sobre una conexión dedicada.
	WithSession(ctx context.Context, fn func(r Repositories) error) error
	// WithTx ejecuta fn dentro de una transacción; Commit si fn retorna nil, Rollback en otro caso.
	WithTx(ctx context.Context, fn func(r Repositories) error) error
}
