package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// MovementFilter filtros para el listado de movimientos.
type MovementFilter struct {
	Type        entity.MovementType
	Status      entity.MovementStatus
	WarehouseID string
	SupplierID  string
	Search      string // subcadena del código (ej. "PN-2025")
	From        *time.Time
	To          *time.Time
}

// MovementItemRow ítem enriquecido con datos de la variante (lectura).
type MovementItemRow struct {
	ID        string
	VariantID string
	SKU       string
	Name      string
	Quantity  int64
	UnitPrice *decimal.Decimal
	Notes     string
}

// StockMovementRepository define el puerto de persistencia de movimientos (DIP).
// El motor es el único dueño de las transiciones de Status.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	CreateItems(items []*entity.StockMovementItem) error
	GetByID(id string) (*entity.StockMovement, error)
	ListItems(movementID string) ([]*entity.StockMovementItem, error)
	ListItemsWithVariants(movementID string) ([]*MovementItemRow, error)
	List(filter MovementFilter, limit, offset int) ([]*entity.StockMovement, int64, error)
	// TransitionStatus ejecuta el cambio de estado como update condicional
	// (compare-and-swap sobre Status) y reporta si afectó exactamente una fila.
	TransitionStatus(id string, from, to entity.MovementStatus, completedAt *time.Time) (bool, error)
}

// MovementSequenceRepository asigna consecutivos por (tipo, año) con un
// incremento atómico, seguro ante creadores concurrentes.
type MovementSequenceRepository interface {
	Next(movementType entity.MovementType, year int) (int64, error)
}
