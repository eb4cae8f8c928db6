package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

func TestMovementTypeIsValid(t *testing.T) {
	valid := []entity.MovementType{
		entity.MovementTypeImport, entity.MovementTypeExport,
		entity.MovementTypeTransferIn, entity.MovementTypeTransferOut,
		entity.MovementTypeAdjustment, entity.MovementTypeReturn,
		entity.MovementTypeDamage, entity.MovementTypeSale,
	}
	for _, mt := range valid {
		assert.True(t, mt.IsValid(), "tipo %s debe ser válido", mt)
	}
	assert.False(t, entity.MovementType("").IsValid())
	assert.False(t, entity.MovementType("TELEPORT").IsValid())
	assert.False(t, entity.MovementType("import").IsValid(), "el enum distingue mayúsculas")
}

func TestMovementTypeSignedDelta(t *testing.T) {
	cases := []struct {
		movementType entity.MovementType
		quantity     int64
		want         int64
	}{
		{entity.MovementTypeImport, 10, 10},
		{entity.MovementTypeTransferIn, 5, 5},
		{entity.MovementTypeReturn, 2, 2},
		{entity.MovementTypeExport, 3, -3},
		{entity.MovementTypeTransferOut, 4, -4},
		{entity.MovementTypeDamage, 1, -1},
		{entity.MovementTypeSale, 6, -6},
		// ADJUSTMENT respeta el signo que trae la cantidad.
		{entity.MovementTypeAdjustment, 7, 7},
		{entity.MovementTypeAdjustment, -7, -7},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.movementType.SignedDelta(tc.quantity),
			"delta de %s con cantidad %d", tc.movementType, tc.quantity)
	}
}

func TestStockLevelIsLow(t *testing.T) {
	assert.True(t, (&entity.StockLevel{Quantity: 3, MinQuantity: 5}).IsLow())
	assert.True(t, (&entity.StockLevel{Quantity: 5, MinQuantity: 5}).IsLow(), "el umbral es inclusivo")
	assert.False(t, (&entity.StockLevel{Quantity: 6, MinQuantity: 5}).IsLow())
	assert.True(t, (&entity.StockLevel{Quantity: 0, MinQuantity: 0}).IsLow(),
		"cantidad cero con umbral cero cuenta como bajo")
}
