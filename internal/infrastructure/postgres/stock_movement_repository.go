package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del puerto de movimientos sobre PostgreSQL.
// Pasar pool o tx (Querier).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador de movimientos.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, code, type, status, warehouse_id,
	COALESCE(to_warehouse_id, ''), COALESCE(supplier_id, ''), COALESCE(order_id, ''),
	total_amount, notes, created_by, created_at, completed_at`

// Create persiste la cabecera del movimiento.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, code, type, status, warehouse_id, to_warehouse_id,
			supplier_id, order_id, total_amount, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, NULLIF($7, '')::uuid, NULLIF($8, ''), $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Code, string(movement.Type), string(movement.Status),
		movement.WarehouseID, movement.ToWarehouseID, movement.SupplierID, movement.OrderID,
		movement.TotalAmount, movement.Notes, movement.CreatedBy, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// CreateItems persiste las líneas del movimiento (inmutables tras la creación).
func (r *StockMovementRepo) CreateItems(items []*entity.StockMovementItem) error {
	query := `
		INSERT INTO stock_movement_items (id, movement_id, variant_id, quantity, unit_price, notes)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, item := range items {
		_, err := r.q.Exec(context.Background(), query,
			item.ID, item.MovementID, item.VariantID, item.Quantity, item.UnitPrice, item.Notes,
		)
		if err != nil {
			return fmt.Errorf("insert movement item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cabecera de un movimiento (nil si no existe).
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	// Un id que no es UUID no puede existir en el esquema; sin este corte
	// pgx fallaría al codificar el parámetro contra la columna uuid.
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	mov, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return mov, nil
}

// ListItems líneas crudas de un movimiento (para aplicar efectos).
func (r *StockMovementRepo) ListItems(movementID string) ([]*entity.StockMovementItem, error) {
	query := `
		SELECT id, movement_id, variant_id, quantity, unit_price, COALESCE(notes, '')
		FROM stock_movement_items WHERE movement_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, movementID)
	if err != nil {
		return nil, fmt.Errorf("list movement items: %w", err)
	}
	defer rows.Close()
	var items []*entity.StockMovementItem
	for rows.Next() {
		var it entity.StockMovementItem
		if err := rows.Scan(&it.ID, &it.MovementID, &it.VariantID, &it.Quantity, &it.UnitPrice, &it.Notes); err != nil {
			return nil, fmt.Errorf("scan movement item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// ListItemsWithVariants líneas enriquecidas con SKU y nombre (vista de detalle).
func (r *StockMovementRepo) ListItemsWithVariants(movementID string) ([]*repository.MovementItemRow, error) {
	query := `
		SELECT i.id, i.variant_id, v.sku, v.name, i.quantity, i.unit_price, COALESCE(i.notes, '')
		FROM stock_movement_items i
		JOIN variants v ON v.id = i.variant_id
		WHERE i.movement_id = $1 ORDER BY v.sku`
	rows, err := r.q.Query(context.Background(), query, movementID)
	if err != nil {
		return nil, fmt.Errorf("list movement items: %w", err)
	}
	defer rows.Close()
	var items []*repository.MovementItemRow
	for rows.Next() {
		var it repository.MovementItemRow
		if err := rows.Scan(&it.ID, &it.VariantID, &it.SKU, &it.Name, &it.Quantity, &it.UnitPrice, &it.Notes); err != nil {
			return nil, fmt.Errorf("scan movement item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// List listado paginado con filtros. El WHERE se arma con placeholders,
// nunca interpolando los valores del filtro en el texto SQL.
func (r *StockMovementRepo) List(filter repository.MovementFilter, limit, offset int) ([]*entity.StockMovement, int64, error) {
	where := ` WHERE true`
	args := []any{}
	add := func(cond string, val any) {
		args = append(args, val)
		where += fmt.Sprintf(cond, len(args))
	}
	if filter.Type != "" {
		add(" AND type = $%d", string(filter.Type))
	}
	if filter.Status != "" {
		add(" AND status = $%d", string(filter.Status))
	}
	if filter.WarehouseID != "" {
		add(" AND (warehouse_id = $%d OR to_warehouse_id = $%[1]d)", filter.WarehouseID)
	}
	if filter.SupplierID != "" {
		add(" AND supplier_id = $%d", filter.SupplierID)
	}
	if filter.Search != "" {
		add(" AND code ILIKE '%%' || $%d || '%%'", filter.Search)
	}
	if filter.From != nil {
		add(" AND created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add(" AND created_at <= $%d", *filter.To)
	}

	var total int64
	if err := r.q.QueryRow(context.Background(), "SELECT count(*) FROM stock_movements"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock movements: %w", err)
	}

	args = append(args, limit, offset)
	query := `SELECT ` + movementColumns + ` FROM stock_movements` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		mov, err := scanMovement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, mov)
	}
	return list, total, rows.Err()
}

// TransitionStatus cambio de estado como update condicional (compare-and-swap
// sobre status). Reporta si afectó exactamente una fila; cero filas significa
// que el movimiento no existe o ya no está en el estado esperado.
func (r *StockMovementRepo) TransitionStatus(id string, from, to entity.MovementStatus, completedAt *time.Time) (bool, error) {
	if uuid.Validate(id) != nil {
		return false, nil
	}
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE stock_movements SET status = $3, completed_at = $4 WHERE id = $1 AND status = $2`,
		id, string(from), string(to), completedAt,
	)
	if err != nil {
		return false, fmt.Errorf("transition movement status: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var movType, status string
	err := row.Scan(
		&m.ID, &m.Code, &movType, &status, &m.WarehouseID, &m.ToWarehouseID,
		&m.SupplierID, &m.OrderID, &m.TotalAmount, &m.Notes, &m.CreatedBy,
		&m.CreatedAt, &m.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Type = entity.MovementType(movType)
	m.Status = entity.MovementStatus(status)
	return &m, nil
}
