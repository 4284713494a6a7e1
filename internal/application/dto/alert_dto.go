package dto

// LowStockAlert producto bajo su umbral en una bodega.
// Supplier es nil cuando no hay proveedor designado (se serializa como null).
type LowStockAlert struct {
	ProductID         int64             `json:"product_id"`
	ProductName       string            `json:"product_name"`
	SKU               string            `json:"sku"`
	WarehouseID       int64             `json:"warehouse_id"`
	WarehouseName     string            `json:"warehouse_name"`
	CurrentStock      int               `json:"current_stock"`
	Threshold         int               `json:"threshold"`
	DaysUntilStockout int               `json:"days_until_stockout"`
	Supplier          *SupplierResponse `json:"supplier"`
}

// LowStockReport reporte de alertas; TotalAlerts siempre es len(Alerts).
type LowStockReport struct {
	Alerts      []LowStockAlert `json:"alerts"`
	TotalAlerts int             `json:"total_alerts"`
}
