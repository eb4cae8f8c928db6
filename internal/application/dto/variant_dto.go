package dto

import "github.com/shopspring/decimal"

// VariantSearchResponse resultado de búsqueda de variantes para el
// formulario de autoría de movimientos.
type VariantSearchResponse struct {
	ID       string          `json:"id"`
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock"`
	ImageURL string          `json:"imageUrl,omitempty"`
}
