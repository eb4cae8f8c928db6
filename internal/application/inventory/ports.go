package inventory

import (
	"context"

	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// movimientos: o se aplican todos los efectos (libro, agregado, estado)
// o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		levelRepo repository.StockLevelRepository,
		variantRepo repository.VariantRepository,
		seqRepo repository.MovementSequenceRepository,
	) error) error
}
