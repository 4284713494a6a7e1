package entity

import (
	"math"
	"time"
)

// MaxQuantity tope de cantidades y cambios (columnas INTEGER).
const MaxQuantity = math.MaxInt32

// Inventory representa la cantidad de un producto en una bodega.
// El stock total de un producto es la suma de Quantity en todas sus filas.
type Inventory struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Quantity    int
	UpdatedAt   time.Time
}

// ValidQuantity indica si q cabe en [0, MaxQuantity].
func ValidQuantity(q int) bool {
	return q >= 0 && q <= MaxQuantity
}

// CanApply indica si aplicar change deja la cantidad en un valor no negativo.
// Se compara contra -Quantity para no desbordar con cambios extremos.
func (i *Inventory) CanApply(change int) bool {
	return change >= -i.Quantity
}

// Exceeds indica si aplicar change deja la cantidad por encima de MaxQuantity.
func (i *Inventory) Exceeds(change int) bool {
	return change > MaxQuantity-i.Quantity
}
