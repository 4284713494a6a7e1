package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold umbral de alerta cuando el producto no define uno propio.
const DefaultLowStockThreshold = 20

// Product representa un producto o SKU del catálogo. El stock se maneja por bodega en Inventory.
type Product struct {
	ID                int64
	Name              string
	SKU               string // único en todo el catálogo
	Price             decimal.Decimal
	IsBundle          bool
	LowStockThreshold *int // nil = usar el umbral por defecto
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AlertThreshold devuelve el umbral propio del producto o def si no tiene uno configurado.
func (p *Product) AlertThreshold(def int) int {
	if p.LowStockThreshold != nil {
		return *p.LowStockThreshold
	}
	return def
}
