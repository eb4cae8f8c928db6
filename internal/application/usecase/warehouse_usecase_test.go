package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/usecase"
	"github.com/tu-usuario/bodega-api/internal/domain"
)

func TestWarehouseCreate(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newFakeWarehouseRepo())

	created, err := uc.Create(dto.CreateWarehouseRequest{Name: "Bodega principal", Code: "BOD-01", Address: "Calle 10 #5-20"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive, "una bodega nace activa")

	// Mismo código: la unicidad la reporta el repositorio.
	_, err = uc.Create(dto.CreateWarehouseRequest{Name: "Otra", Code: "BOD-01"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(dto.CreateWarehouseRequest{Name: "", Code: "BOD-02"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(dto.CreateWarehouseRequest{Name: "Sin código"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWarehouseUpdate_PatchParcial(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newFakeWarehouseRepo())
	created, err := uc.Create(dto.CreateWarehouseRequest{Name: "Bodega norte", Code: "BOD-02", Phone: "3001112233"})
	require.NoError(t, err)

	name := "Bodega norte ampliada"
	updated, err := uc.Update(created.ID, dto.UpdateWarehouseRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, "3001112233", updated.Phone, "los campos no enviados no cambian")
	assert.Equal(t, "BOD-02", updated.Code, "el código no es editable")

	_, err = uc.Update("no-such-id", dto.UpdateWarehouseRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarehouseDeactivate_BajaLogica(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newFakeWarehouseRepo())
	created, err := uc.Create(dto.CreateWarehouseRequest{Name: "Bodega sur", Code: "BOD-03"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateWarehouseRequest{Name: "Bodega este", Code: "BOD-04"})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(created.ID))

	// La bodega sigue existiendo (los movimientos históricos la referencian)
	// pero sale del listado por defecto.
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	active, err := uc.List(false)
	require.NoError(t, err)
	assert.Len(t, active.Items, 1)

	all, err := uc.List(true)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)

	assert.ErrorIs(t, uc.Deactivate("no-such-id"), domain.ErrNotFound)
}

func TestSupplierRegistry(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())

	created, err := uc.Create(dto.CreateSupplierRequest{Name: "Textiles del Sur", Code: "PROV-01"})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	_, err = uc.Create(dto.CreateSupplierRequest{Name: "Duplicado", Code: "PROV-01"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	require.NoError(t, uc.Deactivate(created.ID))
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive, "la baja de proveedor también es lógica")

	_, err = uc.GetByID("no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
