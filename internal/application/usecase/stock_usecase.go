package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// StockUseCase lecturas del libro de inventario y ajuste directo.
// El libro nunca decide cuándo cambiar cantidades: eso lo hace el motor de
// movimientos al completar; el ajuste directo es la excepción administrativa
// y corre en su propia transacción con bloqueo de fila.
type StockUseCase struct {
	levelRepo     repository.StockLevelRepository
	warehouseRepo repository.WarehouseRepository
	variantRepo   repository.VariantRepository
	txRunner      inventory.TxRunner
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	levelRepo repository.StockLevelRepository,
	warehouseRepo repository.WarehouseRepository,
	variantRepo repository.VariantRepository,
	txRunner inventory.TxRunner,
) *StockUseCase {
	return &StockUseCase{
		levelRepo:     levelRepo,
		warehouseRepo: warehouseRepo,
		variantRepo:   variantRepo,
		txRunner:      txRunner,
	}
}

// List listado filtrado del libro (bodega, búsqueda por SKU/nombre, solo bajo stock).
func (uc *StockUseCase) List(filter repository.StockLevelFilter, page dto.PageRequest) (*dto.StockListResponse, error) {
	if filter.WarehouseID != "" && uuid.Validate(filter.WarehouseID) != nil {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	rows, total, err := uc.levelRepo.List(filter, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockLevelResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, toStockLevelResponse(r))
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Limit: page.Limit, Total: total},
	}, nil
}

// LowStock filas con quantity <= min_quantity, opcionalmente por bodega.
func (uc *StockUseCase) LowStock(warehouseID string) ([]dto.StockLevelResponse, error) {
	if warehouseID != "" && uuid.Validate(warehouseID) != nil {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.levelRepo.LowStock(warehouseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockLevelResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, toStockLevelResponse(r))
	}
	return items, nil
}

// Stats valoración del libro: filas, filas bajo reorden y valor total.
func (uc *StockUseCase) Stats(warehouseID string) (*dto.StockStatsResponse, error) {
	if warehouseID != "" && uuid.Validate(warehouseID) != nil {
		return nil, domain.ErrInvalidInput
	}
	stats, err := uc.levelRepo.Stats(warehouseID)
	if err != nil {
		return nil, err
	}
	return &dto.StockStatsResponse{
		TotalItems:    stats.TotalItems,
		LowStockCount: stats.LowStockCount,
		TotalValue:    stats.TotalValue,
	}, nil
}

// Adjust ajuste directo (upsert por clave compuesta), fuera del flujo de
// movimientos. No admite cantidades negativas. La fila del libro y el
// agregado de la variante cambian en la misma transacción; el bloqueo de
// fila serializa a los ajustadores concurrentes del mismo par.
func (uc *StockUseCase) Adjust(ctx context.Context, warehouseID, variantID string, in dto.AdjustStockLevelRequest) error {
	if in.Quantity == nil && in.MinQuantity == nil {
		return domain.ErrInvalidInput
	}
	if (in.Quantity != nil && *in.Quantity < 0) || (in.MinQuantity != nil && *in.MinQuantity < 0) {
		return domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	variant, err := uc.variantRepo.GetByID(variantID)
	if err != nil {
		return err
	}
	if variant == nil {
		return domain.ErrNotFound
	}

	return uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		levelRepo repository.StockLevelRepository,
		variantRepo repository.VariantRepository,
		_ repository.MovementSequenceRepository,
	) error {
		level, err := levelRepo.GetForUpdate(warehouseID, variantID)
		if err != nil {
			return err
		}
		if level == nil {
			level = &entity.StockLevel{WarehouseID: warehouseID, VariantID: variantID}
		}
		oldQty := level.Quantity
		if in.Quantity != nil {
			level.Quantity = *in.Quantity
		}
		if in.MinQuantity != nil {
			level.MinQuantity = *in.MinQuantity
		}
		level.UpdatedAt = time.Now()
		if err := levelRepo.Upsert(level); err != nil {
			return err
		}
		// Mantener el agregado de la variante coherente con la corrección manual.
		if delta := level.Quantity - oldQty; delta != 0 {
			return variantRepo.AdjustStock(variantID, delta)
		}
		return nil
	})
}

func toStockLevelResponse(r *repository.StockLevelRow) dto.StockLevelResponse {
	return dto.StockLevelResponse{
		WarehouseID:   r.WarehouseID,
		WarehouseName: r.WarehouseName,
		VariantID:     r.VariantID,
		SKU:           r.SKU,
		VariantName:   r.VariantName,
		Quantity:      r.Quantity,
		MinQuantity:   r.MinQuantity,
		Price:         r.Price,
		IsLow:         r.Quantity <= r.MinQuantity,
	}
}
