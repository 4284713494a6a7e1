package entity

import "time"

// Warehouse representa una bodega de una empresa donde se almacena inventario.
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
	Address   string
	CreatedAt time.Time
}
