package dto

import "github.com/shopspring/decimal"

// StockLevelResponse fila del libro de inventario enriquecida para listados.
type StockLevelResponse struct {
	WarehouseID   string          `json:"warehouseId"`
	WarehouseName string          `json:"warehouseName"`
	VariantID     string          `json:"variantId"`
	SKU           string          `json:"sku"`
	VariantName   string          `json:"variantName"`
	Quantity      int64           `json:"quantity"`
	MinQuantity   int64           `json:"minQuantity"`
	Price         decimal.Decimal `json:"price"`
	IsLow         bool            `json:"isLow"`
}

// StockListResponse listado paginado del libro.
type StockListResponse struct {
	Items []StockLevelResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// AdjustStockLevelRequest ajuste directo (fuera del flujo de movimientos).
// Campos nil no se modifican; quantity nunca puede quedar negativa.
type AdjustStockLevelRequest struct {
	Quantity    *int64 `json:"quantity" validate:"omitempty,min=0"`
	MinQuantity *int64 `json:"minQuantity" validate:"omitempty,min=0"`
}

// StockStatsResponse estadísticas de valoración del libro.
type StockStatsResponse struct {
	TotalItems    int64           `json:"totalItems"`
	LowStockCount int64           `json:"lowStockCount"`
	TotalValue    decimal.Decimal `json:"totalValue"`
}
