package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada para crear o reemplazar un producto (PUT sobrescribe todos los campos).
// Price es obligatorio; nil significa que no vino en el cuerpo.
type ProductRequest struct {
	Name              string           `json:"name"`
	SKU               string           `json:"sku"`
	Price             *decimal.Decimal `json:"price"`
	IsBundle          *bool            `json:"is_bundle,omitempty"`
	LowStockThreshold *int             `json:"low_stock_threshold,omitempty"`
}

// ProductStockResponse producto del listado con su stock total.
type ProductStockResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	SKU               string  `json:"sku"`
	Price             float64 `json:"price"`
	IsBundle          bool    `json:"is_bundle"`
	LowStockThreshold *int    `json:"low_stock_threshold"`
	Stock             int     `json:"stock"`
}

// ProductListResponse listado completo de productos (sin paginación).
type ProductListResponse struct {
	Products []ProductStockResponse `json:"products"`
}

// ProductMutationResponse respuesta de creación/actualización.
type ProductMutationResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
}
