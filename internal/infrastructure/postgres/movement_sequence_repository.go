package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

var _ repository.MovementSequenceRepository = (*MovementSequenceRepo)(nil)

// MovementSequenceRepo asigna consecutivos por (tipo, año) sobre una fila
// contadora. El upsert-incremento es atómico: dos creadores concurrentes del
// mismo (tipo, año) serializan por bloqueo de fila y reciben valores distintos.
// Reemplaza el esquema frágil de contar filas previas y sumar uno.
type MovementSequenceRepo struct {
	q Querier
}

// NewMovementSequenceRepository construye el adaptador. Usar siempre dentro
// de la transacción que inserta el movimiento, para no quemar consecutivos
// si la inserción falla.
func NewMovementSequenceRepository(q Querier) *MovementSequenceRepo {
	return &MovementSequenceRepo{q: q}
}

// Next devuelve el siguiente consecutivo para (tipo, año).
func (r *MovementSequenceRepo) Next(movementType entity.MovementType, year int) (int64, error) {
	query := `
		INSERT INTO movement_sequences (movement_type, year, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (movement_type, year)
		DO UPDATE SET last_value = movement_sequences.last_value + 1
		RETURNING last_value`
	var seq int64
	err := r.q.QueryRow(context.Background(), query, string(movementType), year).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next movement sequence: %w", err)
	}
	return seq, nil
}
