package repository

import "github.com/tu-usuario/bodega-api/internal/domain/entity"

// VariantRepository define el puerto hacia el catálogo (colaborador externo).
// Solo lectura, salvo AdjustStock que mantiene el contador agregado de la
// variante (total en todas las bodegas) desde la transacción de completado.
type VariantRepository interface {
	GetByID(id string) (*entity.Variant, error)
	// AdjustStock incrementa el agregado de forma atómica (stock = stock + delta).
	AdjustStock(variantID string, delta int64) error
	// Search busca por subcadena de SKU o nombre, hasta limit resultados.
	Search(q string, limit int) ([]*entity.Variant, error)
}
