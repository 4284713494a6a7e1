package dto

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// SupplierResponse salida de un proveedor; también se usa dentro de las alertas.
type SupplierResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// SupplierListResponse listado de proveedores.
type SupplierListResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}
