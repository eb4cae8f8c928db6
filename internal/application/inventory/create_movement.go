package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// CreateMovementUseCase crea movimientos en estado PENDING con sus ítems
// inmutables. No toca el libro de inventario: el efecto se aplica al completar.
type CreateMovementUseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
	supplierRepo  repository.SupplierRepository
	variantRepo   repository.VariantRepository
	now           func() time.Time
}

// NewCreateMovementUseCase construye el caso de uso.
func NewCreateMovementUseCase(
	txRunner TxRunner,
	warehouseRepo repository.WarehouseRepository,
	supplierRepo repository.SupplierRepository,
	variantRepo repository.VariantRepository,
) *CreateMovementUseCase {
	return &CreateMovementUseCase{
		txRunner:      txRunner,
		warehouseRepo: warehouseRepo,
		supplierRepo:  supplierRepo,
		variantRepo:   variantRepo,
		now:           time.Now,
	}
}

// Create valida el request, asigna el consecutivo por (tipo, año) y persiste
// movimiento + ítems en una sola transacción. Para IMPORT calcula TotalAmount
// como Σ unitPrice × quantity; para los demás tipos queda en cero.
func (uc *CreateMovementUseCase) Create(ctx context.Context, createdBy string, in dto.CreateMovementRequest) (*entity.StockMovement, error) {
	movementType := entity.MovementType(in.Type)
	if err := uc.validate(movementType, in); err != nil {
		return nil, err
	}

	now := uc.now()
	mov := &entity.StockMovement{
		ID:            uuid.New().String(),
		Type:          movementType,
		Status:        entity.MovementStatusPending,
		WarehouseID:   in.WarehouseID,
		ToWarehouseID: in.ToWarehouseID,
		SupplierID:    in.SupplierID,
		OrderID:       in.OrderID,
		TotalAmount:   decimal.Zero,
		Notes:         in.Notes,
		CreatedBy:     createdBy,
		CreatedAt:     now,
	}

	items := make([]*entity.StockMovementItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, &entity.StockMovementItem{
			ID:         uuid.New().String(),
			MovementID: mov.ID,
			VariantID:  it.VariantID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			Notes:      it.Notes,
		})
	}
	if movementType == entity.MovementTypeImport {
		total := decimal.Zero
		for _, it := range items {
			total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
		}
		mov.TotalAmount = total
	}

	// Consecutivo + inserción en la misma transacción: el incremento atómico
	// del contador serializa a los creadores concurrentes del mismo (tipo, año).
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		_ repository.StockLevelRepository,
		_ repository.VariantRepository,
		seqRepo repository.MovementSequenceRepository,
	) error {
		seq, err := seqRepo.Next(movementType, now.Year())
		if err != nil {
			return err
		}
		mov.Code = FormatMovementCode(movementType, now.Year(), seq)
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return movRepo.CreateItems(items)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// validate aplica las reglas de creación: tipo válido, contraparte requerida
// (proveedor en IMPORT, bodega destino en traslados), al menos un ítem con
// cantidad positiva (ADJUSTMENT admite signo, nunca cero) y existencia de
// bodega/proveedor/variantes referenciados.
func (uc *CreateMovementUseCase) validate(movementType entity.MovementType, in dto.CreateMovementRequest) error {
	if !movementType.IsValid() || in.WarehouseID == "" || len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	switch movementType {
	case entity.MovementTypeImport:
		if in.SupplierID == "" {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeTransferIn, entity.MovementTypeTransferOut:
		if in.ToWarehouseID == "" || in.ToWarehouseID == in.WarehouseID {
			return domain.ErrInvalidInput
		}
	}
	for _, it := range in.Items {
		if it.VariantID == "" {
			return domain.ErrInvalidInput
		}
		if movementType == entity.MovementTypeAdjustment {
			if it.Quantity == 0 {
				return domain.ErrInvalidInput
			}
		} else if it.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
		if movementType == entity.MovementTypeImport && (it.UnitPrice == nil || it.UnitPrice.LessThan(decimal.Zero)) {
			return domain.ErrInvalidInput
		}
	}

	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	if in.ToWarehouseID != "" {
		toWarehouse, err := uc.warehouseRepo.GetByID(in.ToWarehouseID)
		if err != nil {
			return err
		}
		if toWarehouse == nil {
			return domain.ErrNotFound
		}
	}
	if in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.ErrNotFound
		}
	}
	for _, it := range in.Items {
		variant, err := uc.variantRepo.GetByID(it.VariantID)
		if err != nil {
			return err
		}
		if variant == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}
