package dto

import "time"

// CreateInventoryRequest body para POST /api/inventory.
type CreateInventoryRequest struct {
	ProductID   int64 `json:"product_id"`
	WarehouseID int64 `json:"warehouse_id"`
	Quantity    int   `json:"quantity"`
}

// AdjustInventoryRequest body para POST /api/inventory/{id}/adjustments.
type AdjustInventoryRequest struct {
	Change int    `json:"change"` // positivo entrada, negativo salida
	Reason string `json:"reason"`
}

// InventoryResponse fila de inventario.
type InventoryResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	WarehouseID int64     `json:"warehouse_id"`
	Quantity    int       `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InventoryListResponse filas de inventario de una bodega.
type InventoryListResponse struct {
	Inventory []InventoryResponse `json:"inventory"`
}

// InventoryHistoryResponse entrada del historial.
type InventoryHistoryResponse struct {
	ID          int64     `json:"id"`
	InventoryID int64     `json:"inventory_id"`
	Change      int       `json:"change"`
	Reason      string    `json:"reason"`
	ChangedAt   time.Time `json:"changed_at"`
}

// InventoryHistoryListResponse historial de una fila de inventario.
type InventoryHistoryListResponse struct {
	History []InventoryHistoryResponse `json:"history"`
}
