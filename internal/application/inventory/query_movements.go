package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// QueryMovementsUseCase lado de lectura del motor: listado paginado con
// filtros y detalle con ítems enriquecidos. Sin efectos secundarios.
type QueryMovementsUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewQueryMovementsUseCase construye el caso de uso.
func NewQueryMovementsUseCase(movRepo repository.StockMovementRepository) *QueryMovementsUseCase {
	return &QueryMovementsUseCase{movRepo: movRepo}
}

// List listado paginado con filtros de tipo, bodega, proveedor, estado,
// búsqueda por código y rango de fechas.
func (uc *QueryMovementsUseCase) List(in dto.ListMovementsRequest) (*dto.MovementListResponse, error) {
	filter, err := buildFilter(in)
	if err != nil {
		return nil, err
	}
	in.DefaultPage()
	movements, total, err := uc.movRepo.List(filter, in.Limit, in.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *ToMovementResponse(m, nil))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: in.Page, Limit: in.Limit, Total: total},
	}, nil
}

// GetByID detalle de un movimiento con sus ítems (incluye SKU y nombre de
// cada variante para la vista de detalle).
func (uc *QueryMovementsUseCase) GetByID(id string) (*dto.MovementResponse, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.movRepo.ListItemsWithVariants(id)
	if err != nil {
		return nil, err
	}
	return ToMovementResponse(mov, items), nil
}

func buildFilter(in dto.ListMovementsRequest) (repository.MovementFilter, error) {
	filter := repository.MovementFilter{
		WarehouseID: in.WarehouseID,
		SupplierID:  in.SupplierID,
		Search:      in.Search,
	}
	// Los filtros por id se comparan contra columnas uuid.
	if in.WarehouseID != "" && uuid.Validate(in.WarehouseID) != nil {
		return filter, domain.ErrInvalidInput
	}
	if in.SupplierID != "" && uuid.Validate(in.SupplierID) != nil {
		return filter, domain.ErrInvalidInput
	}
	if in.Type != "" {
		t := entity.MovementType(in.Type)
		if !t.IsValid() {
			return filter, domain.ErrInvalidInput
		}
		filter.Type = t
	}
	if in.Status != "" {
		switch s := entity.MovementStatus(in.Status); s {
		case entity.MovementStatusPending, entity.MovementStatusCompleted, entity.MovementStatusCancelled:
			filter.Status = s
		default:
			return filter, domain.ErrInvalidInput
		}
	}
	if in.From != "" {
		t, err := parseDate(in.From)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		filter.From = &t
	}
	if in.To != "" {
		t, err := parseDate(in.To)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		filter.To = &t
	}
	return filter, nil
}

// parseDate acepta RFC 3339 o fecha simple YYYY-MM-DD.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// ToMovementResponse mapea la entidad al DTO de salida.
func ToMovementResponse(m *entity.StockMovement, items []*repository.MovementItemRow) *dto.MovementResponse {
	resp := &dto.MovementResponse{
		ID:            m.ID,
		Code:          m.Code,
		Type:          string(m.Type),
		Status:        string(m.Status),
		WarehouseID:   m.WarehouseID,
		ToWarehouseID: m.ToWarehouseID,
		SupplierID:    m.SupplierID,
		OrderID:       m.OrderID,
		TotalAmount:   m.TotalAmount,
		Notes:         m.Notes,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
		CompletedAt:   m.CompletedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.MovementItemResponse{
			ID:        it.ID,
			VariantID: it.VariantID,
			SKU:       it.SKU,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Notes:     it.Notes,
		})
	}
	return resp
}
