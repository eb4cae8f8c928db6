package inventory

import (
	"fmt"

	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// FormatMovementCode construye el código legible de un movimiento:
// {PREFIJO}-{año}-{secuencia a 4 dígitos}, ej. PN-2025-0001.
// La secuencia la asigna MovementSequenceRepository con un incremento
// atómico por (tipo, año), seguro ante creadores concurrentes.
func FormatMovementCode(t entity.MovementType, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%04d", t.CodePrefix(), year, seq)
}
