package entity

import "time"

// StockLevel representa el stock actual de una variante en una bodega.
// Clave compuesta (WarehouseID, VariantID). Se crea de forma perezosa al
// completar el primer movimiento que toca el par, o por ajuste directo.
// Invariante: Quantity >= 0 (un movimiento que la dejaría negativa falla
// con ErrInsufficientStock antes del commit).
type StockLevel struct {
	WarehouseID string
	VariantID   string
	Quantity    int64
	MinQuantity int64 // umbral de reorden: Quantity <= MinQuantity => stock bajo
	UpdatedAt   time.Time
}

// IsLow indica si la fila está en nivel de reorden.
func (s *StockLevel) IsLow() bool {
	return s.Quantity <= s.MinQuantity
}
