package entity

// ProductBundle indica que el producto BundleID contiene Quantity unidades del producto ComponentID.
// Son dos referencias independientes a products: un producto puede ser kit y componente a la vez.
type ProductBundle struct {
	ID          int64
	BundleID    int64
	ComponentID int64
	Quantity    int
}
