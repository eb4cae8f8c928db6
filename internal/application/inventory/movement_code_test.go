package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

func TestFormatMovementCode(t *testing.T) {
	cases := []struct {
		movementType entity.MovementType
		year         int
		seq          int64
		want         string
	}{
		{entity.MovementTypeImport, 2025, 1, "PN-2025-0001"},
		{entity.MovementTypeExport, 2025, 42, "PX-2025-0042"},
		{entity.MovementTypeTransferIn, 2024, 7, "NK-2024-0007"},
		{entity.MovementTypeTransferOut, 2025, 130, "XK-2025-0130"},
		{entity.MovementTypeAdjustment, 2025, 3, "DC-2025-0003"},
		{entity.MovementTypeReturn, 2025, 9, "TH-2025-0009"},
		{entity.MovementTypeDamage, 2025, 11, "HH-2025-0011"},
		{entity.MovementTypeSale, 2025, 9999, "BH-2025-9999"},
		// Más de cuatro dígitos: el código se alarga, no se trunca.
		{entity.MovementTypeSale, 2025, 12345, "BH-2025-12345"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, inventory.FormatMovementCode(tc.movementType, tc.year, tc.seq))
	}
}
