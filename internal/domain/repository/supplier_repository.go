package repository

import "github.com/tu-usuario/bodega-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// Deactivate es baja lógica: nunca se elimina la fila.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(includeInactive bool) ([]*entity.Supplier, error)
	Deactivate(id string) (bool, error)
}
