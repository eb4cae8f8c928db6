package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// StockLevelFilter filtros para el listado del libro de inventario.
type StockLevelFilter struct {
	WarehouseID string
	Search      string // subcadena de SKU o nombre de la variante
	LowOnly     bool   // solo filas con quantity <= min_quantity
}

// StockLevelRow fila del libro enriquecida con datos de la variante (lectura).
type StockLevelRow struct {
	WarehouseID   string
	WarehouseName string
	VariantID     string
	SKU           string
	VariantName   string
	Quantity      int64
	MinQuantity   int64
	Price         decimal.Decimal
}

// StockStats estadísticas agregadas del libro.
type StockStats struct {
	TotalItems    int64           // filas del libro
	LowStockCount int64           // filas con quantity <= min_quantity
	TotalValue    decimal.Decimal // Σ quantity × precio de la variante
}

// StockLevelRepository define el puerto de persistencia del libro de
// inventario (DIP). ApplyDelta es la única vía de escritura del motor de
// movimientos; Upsert queda para correcciones administrativas directas.
type StockLevelRepository interface {
	Get(warehouseID, variantID string) (*entity.StockLevel, error)
	// GetForUpdate como Get, pero con bloqueo de fila; usar solo dentro de
	// una transacción.
	GetForUpdate(warehouseID, variantID string) (*entity.StockLevel, error)
	// ApplyDelta incrementa quantity de forma atómica, creando la fila si no
	// existe, y devuelve la cantidad resultante (puede ser negativa: el motor
	// decide si revertir la transacción).
	ApplyDelta(warehouseID, variantID string, delta int64) (int64, error)
	// Upsert fija quantity/min_quantity de forma absoluta (ajuste directo).
	Upsert(level *entity.StockLevel) error
	List(filter StockLevelFilter, limit, offset int) ([]*StockLevelRow, int64, error)
	LowStock(warehouseID string) ([]*StockLevelRow, error)
	Stats(warehouseID string) (*StockStats, error)
}
