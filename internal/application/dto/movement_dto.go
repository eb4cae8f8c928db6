package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementItemRequest línea de un movimiento a crear.
type MovementItemRequest struct {
	VariantID string           `json:"variantId" validate:"required"`
	Quantity  int64            `json:"quantity" validate:"required"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// CreateMovementRequest body para POST /api/inventory/movements.
type CreateMovementRequest struct {
	Type          string                `json:"type" validate:"required"`
	WarehouseID   string                `json:"warehouseId" validate:"required"`
	SupplierID    string                `json:"supplierId,omitempty"`
	ToWarehouseID string                `json:"toWarehouseId,omitempty"`
	OrderID       string                `json:"orderId,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	Items         []MovementItemRequest `json:"items" validate:"required,min=1"`
}

// MovementItemResponse línea de movimiento enriquecida con la variante.
type MovementItemResponse struct {
	ID        string           `json:"id"`
	VariantID string           `json:"variantId"`
	SKU       string           `json:"sku"`
	Name      string           `json:"name"`
	Quantity  int64            `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID            string                 `json:"id"`
	Code          string                 `json:"code"`
	Type          string                 `json:"type"`
	Status        string                 `json:"status"`
	WarehouseID   string                 `json:"warehouseId"`
	ToWarehouseID string                 `json:"toWarehouseId,omitempty"`
	SupplierID    string                 `json:"supplierId,omitempty"`
	OrderID       string                 `json:"orderId,omitempty"`
	TotalAmount   decimal.Decimal        `json:"totalAmount"`
	Notes         string                 `json:"notes,omitempty"`
	CreatedBy     string                 `json:"createdBy"`
	CreatedAt     time.Time              `json:"createdAt"`
	CompletedAt   *time.Time             `json:"completedAt,omitempty"`
	Items         []MovementItemResponse `json:"items,omitempty"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ListMovementsRequest filtros del listado (query params).
type ListMovementsRequest struct {
	Type        string `query:"type"`
	Status      string `query:"status"`
	WarehouseID string `query:"warehouseId"`
	SupplierID  string `query:"supplierId"`
	Search      string `query:"search"`
	From        string `query:"from"` // RFC 3339 o YYYY-MM-DD
	To          string `query:"to"`
	PageRequest
}
