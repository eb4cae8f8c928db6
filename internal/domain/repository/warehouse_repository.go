package repository

import "github.com/tu-usuario/bodega-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// Deactivate es baja lógica: nunca se elimina la fila.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List(includeInactive bool) ([]*entity.Warehouse, error)
	Deactivate(id string) (bool, error)
}
