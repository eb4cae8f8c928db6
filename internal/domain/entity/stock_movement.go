package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento de inventario (enum cerrado).
type MovementType string

// Tipos de movimiento de inventario.
const (
	MovementTypeImport      MovementType = "IMPORT"       // entrada desde proveedor
	MovementTypeExport      MovementType = "EXPORT"       // salida
	MovementTypeTransferIn  MovementType = "TRANSFER_IN"  // entrada por traslado
	MovementTypeTransferOut MovementType = "TRANSFER_OUT" // salida por traslado a otra bodega
	MovementTypeAdjustment  MovementType = "ADJUSTMENT"   // ajuste (signo según el llamador)
	MovementTypeReturn      MovementType = "RETURN"       // devolución de cliente
	MovementTypeDamage      MovementType = "DAMAGE"       // merma / daño
	MovementTypeSale        MovementType = "SALE"         // venta
)

// IsValid verifica que el tipo pertenezca al enum.
func (t MovementType) IsValid() bool {
	switch t {
	case MovementTypeImport, MovementTypeExport, MovementTypeTransferIn, MovementTypeTransferOut,
		MovementTypeAdjustment, MovementTypeReturn, MovementTypeDamage, MovementTypeSale:
		return true
	}
	return false
}

// CodePrefix devuelve el prefijo del código legible del movimiento.
func (t MovementType) CodePrefix() string {
	switch t {
	case MovementTypeImport:
		return "PN"
	case MovementTypeExport:
		return "PX"
	case MovementTypeTransferIn:
		return "NK"
	case MovementTypeTransferOut:
		return "XK"
	case MovementTypeAdjustment:
		return "DC"
	case MovementTypeReturn:
		return "TH"
	case MovementTypeDamage:
		return "HH"
	case MovementTypeSale:
		return "BH"
	}
	return ""
}

// SignedDelta devuelve el efecto con signo de una cantidad de ítem sobre el
// stock de la bodega origen. Para ADJUSTMENT la cantidad viene ya firmada
// por la intención del llamador.
func (t MovementType) SignedDelta(quantity int64) int64 {
	switch t {
	case MovementTypeImport, MovementTypeTransferIn, MovementTypeReturn:
		return quantity
	case MovementTypeExport, MovementTypeTransferOut, MovementTypeDamage, MovementTypeSale:
		return -quantity
	case MovementTypeAdjustment:
		return quantity
	}
	return 0
}

// MovementStatus estado del ciclo de vida del movimiento (enum cerrado).
type MovementStatus string

// Estados: PENDING es inicial; COMPLETED y CANCELLED son terminales.
const (
	MovementStatusPending   MovementStatus = "PENDING"
	MovementStatusCompleted MovementStatus = "COMPLETED"
	MovementStatusCancelled MovementStatus = "CANCELLED"
)

// StockMovement registra la intención de cambiar stock. Se crea una sola vez
// con sus ítems inmutables; después solo cambian Status y CompletedAt.
// El efecto sobre el libro se aplica exactamente una vez, al completar.
type StockMovement struct {
	ID            string
	Code          string // {PREFIJO}-{año}-{secuencia 4 dígitos}, ej. PN-2025-0001
	Type          MovementType
	Status        MovementStatus
	WarehouseID   string
	ToWarehouseID string           // bodega contraparte en traslados
	SupplierID    string           // proveedor en importaciones
	OrderID       string           // referencia opcional a una orden
	TotalAmount   decimal.Decimal  // solo significativo para IMPORT
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

// StockMovementItem línea de un movimiento. Pertenece a exactamente un
// movimiento y nunca se actualiza ni elimina de forma independiente.
type StockMovementItem struct {
	ID         string
	MovementID string
	VariantID  string
	Quantity   int64 // > 0 salvo ADJUSTMENT, donde el signo es la intención
	UnitPrice  *decimal.Decimal
	Notes      string
}
