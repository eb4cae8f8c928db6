package entity

import "time"

// Warehouse representa una bodega física o lógica donde se almacena inventario.
// Nunca se elimina físicamente: los movimientos históricos la referencian,
// por lo que la baja es lógica (IsActive=false).
type Warehouse struct {
	ID        string
	Name      string
	Code      string // código único legible (ej. "BOD-01")
	Address   string
	Phone     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
