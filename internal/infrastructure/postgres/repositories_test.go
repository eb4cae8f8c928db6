package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/infrastructure/postgres"
)

// Un id que no tiene forma de UUID no puede existir en el esquema, así que
// los adaptadores lo resuelven como "no encontrado" sin ir a la base. Estos
// tests pasan un Querier nulo a propósito: si el corte fallara, el adaptador
// intentaría consultar y el test entraría en pánico.

func TestWarehouseRepo_IDNoUUID(t *testing.T) {
	repo := postgres.NewWarehouseRepository(nil)

	w, err := repo.GetByID("abc")
	require.NoError(t, err)
	assert.Nil(t, w, "un id que no es UUID se resuelve como inexistente")

	ok, err := repo.Deactivate("abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSupplierRepo_IDNoUUID(t *testing.T) {
	repo := postgres.NewSupplierRepository(nil)

	s, err := repo.GetByID("abc")
	require.NoError(t, err)
	assert.Nil(t, s)

	ok, err := repo.Deactivate("abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVariantRepo_IDNoUUID(t *testing.T) {
	repo := postgres.NewVariantRepository(nil)

	v, err := repo.GetByID("abc")
	require.NoError(t, err)
	assert.Nil(t, v)

	err = repo.AdjustStock("abc", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockMovementRepo_IDNoUUID(t *testing.T) {
	repo := postgres.NewStockMovementRepository(nil)

	m, err := repo.GetByID("abc")
	require.NoError(t, err)
	assert.Nil(t, m, "GET de un id que no es UUID termina en 404, no en 500")

	ok, err := repo.TransitionStatus("abc", entity.MovementStatusPending, entity.MovementStatusCompleted, nil)
	require.NoError(t, err)
	assert.False(t, ok, "el CAS sobre un id inválido no afecta filas")
}
