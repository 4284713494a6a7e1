package entity

import "time"

// InventoryHistory es una entrada del registro de auditoría de una fila de inventario (solo inserción).
type InventoryHistory struct {
	ID          int64
	InventoryID int64
	Change      int // positivo entrada, negativo salida
	Reason      string
	ChangedAt   time.Time
}
