package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// CompleteMovementUseCase aplica el efecto de un movimiento sobre el libro
// de inventario exactamente una vez. Todo ocurre en una sola transacción:
// el cambio de estado (update condicional PENDING→COMPLETED), los deltas del
// libro y el agregado de cada variante. Cualquier fallo revierte todo y el
// movimiento queda en PENDING.
type CompleteMovementUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewCompleteMovementUseCase construye el caso de uso.
func NewCompleteMovementUseCase(txRunner TxRunner) *CompleteMovementUseCase {
	return &CompleteMovementUseCase{txRunner: txRunner, now: time.Now}
}

// Complete ejecuta el completado. Errores: ErrNotFound, ErrAlreadyCompleted,
// ErrAlreadyCancelled, ErrInsufficientStock (un delta dejaría una fila del
// libro negativa; no se recorta en silencio).
func (uc *CompleteMovementUseCase) Complete(ctx context.Context, id string) error {
	now := uc.now()
	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		levelRepo repository.StockLevelRepository,
		variantRepo repository.VariantRepository,
		_ repository.MovementSequenceRepository,
	) error {
		// Transición condicionada al estado PENDING: el check y el cambio son
		// un solo update, no una lectura seguida de escritura. Dos completados
		// concurrentes del mismo movimiento serializan aquí y solo uno aplica.
		ok, err := movRepo.TransitionStatus(id, entity.MovementStatusPending, entity.MovementStatusCompleted, &now)
		if err != nil {
			return err
		}
		if !ok {
			return terminalStateError(movRepo, id)
		}

		mov, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		items, err := movRepo.ListItems(id)
		if err != nil {
			return err
		}

		for _, item := range items {
			delta := mov.Type.SignedDelta(item.Quantity)

			// Incremento atómico con upsert perezoso de la fila del libro.
			newQty, err := levelRepo.ApplyDelta(mov.WarehouseID, item.VariantID, delta)
			if err != nil {
				return err
			}
			if newQty < 0 {
				return domain.ErrInsufficientStock
			}
			// El agregado de la variante es el total en todas las bodegas.
			if err := variantRepo.AdjustStock(item.VariantID, delta); err != nil {
				return err
			}

			// Un traslado acredita la bodega destino por la cantidad completa;
			// el agregado recibe el mismo crédito, así el neto del traslado
			// sobre el agregado es cero (conservación).
			if mov.Type == entity.MovementTypeTransferOut && mov.ToWarehouseID != "" {
				if _, err := levelRepo.ApplyDelta(mov.ToWarehouseID, item.VariantID, item.Quantity); err != nil {
					return err
				}
				if err := variantRepo.AdjustStock(item.VariantID, item.Quantity); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// CancelMovementUseCase cancela movimientos PENDING. Un movimiento cancelado
// jamás toca el libro, ni siquiera si se intenta completarlo después.
type CancelMovementUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewCancelMovementUseCase construye el caso de uso.
func NewCancelMovementUseCase(movRepo repository.StockMovementRepository) *CancelMovementUseCase {
	return &CancelMovementUseCase{movRepo: movRepo}
}

// Cancel ejecuta la transición condicional PENDING→CANCELLED.
func (uc *CancelMovementUseCase) Cancel(ctx context.Context, id string) error {
	ok, err := uc.movRepo.TransitionStatus(id, entity.MovementStatusPending, entity.MovementStatusCancelled, nil)
	if err != nil {
		return err
	}
	if !ok {
		return terminalStateError(uc.movRepo, id)
	}
	return nil
}

// terminalStateError traduce un CAS fallido al error de dominio que
// corresponde al estado real del movimiento.
func terminalStateError(movRepo repository.StockMovementRepository, id string) error {
	mov, err := movRepo.GetByID(id)
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrNotFound
	}
	switch mov.Status {
	case entity.MovementStatusCompleted:
		return domain.ErrAlreadyCompleted
	case entity.MovementStatusCancelled:
		return domain.ErrAlreadyCancelled
	}
	return domain.ErrInvalidInput
}
