package entity

import "time"

// Supplier representa un proveedor de mercancía. Igual que Warehouse,
// la baja es lógica: las importaciones históricas lo referencian.
type Supplier struct {
	ID        string
	Name      string
	Code      string // código único legible (ej. "PROV-01")
	Phone     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
