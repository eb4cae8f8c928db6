package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant representa una variante de producto del catálogo (unidad SKU).
// El catálogo es un colaborador externo: desde este subsistema solo se lee,
// con excepción del contador agregado Stock, que el libro de inventario
// mantiene sincronizado (total en todas las bodegas).
type Variant struct {
	ID        string
	SKU       string
	Name      string
	Price     decimal.Decimal
	Stock     int64 // agregado: suma del stock en todas las bodegas
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
