package dto

// AddBundleComponentRequest body para POST /api/products/{id}/components.
type AddBundleComponentRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// BundleComponentResponse componente de un kit.
type BundleComponentResponse struct {
	ID        int64 `json:"id"`
	BundleID  int64 `json:"bundle_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// BundleComponentListResponse componentes de un kit.
type BundleComponentListResponse struct {
	Components []BundleComponentResponse `json:"components"`
}
