package entity

// Supplier representa un proveedor al que se le hacen pedidos de reposición.
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail string
}
