package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación del libro de inventario sobre PostgreSQL.
// Pasar pool o tx (Querier); el motor de movimientos siempre lo usa vía tx.
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador del libro.
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// Get obtiene la fila del libro para (bodega, variante); nil si no existe.
func (r *StockLevelRepo) Get(warehouseID, variantID string) (*entity.StockLevel, error) {
	query := `
		SELECT warehouse_id, variant_id, quantity, min_quantity, updated_at
		FROM stock_levels WHERE warehouse_id = $1 AND variant_id = $2`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, warehouseID, variantID).Scan(
		&s.WarehouseID, &s.VariantID, &s.Quantity, &s.MinQuantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &s, nil
}

// GetForUpdate como Get, pero bloquea la fila hasta el fin de la transacción.
// Usar solo dentro de una tx: serializa a los ajustadores concurrentes del
// mismo par (bodega, variante).
func (r *StockLevelRepo) GetForUpdate(warehouseID, variantID string) (*entity.StockLevel, error) {
	query := `
		SELECT warehouse_id, variant_id, quantity, min_quantity, updated_at
		FROM stock_levels WHERE warehouse_id = $1 AND variant_id = $2 FOR UPDATE`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, warehouseID, variantID).Scan(
		&s.WarehouseID, &s.VariantID, &s.Quantity, &s.MinQuantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock level for update: %w", err)
	}
	return &s, nil
}

// ApplyDelta incrementa quantity de forma atómica, creando la fila si todavía
// no existe, y devuelve la cantidad resultante. El upsert-incremento serializa
// por bloqueo de fila a los completadores concurrentes que tocan el mismo par
// (bodega, variante); ningún delta se pierde.
func (r *StockLevelRepo) ApplyDelta(warehouseID, variantID string, delta int64) (int64, error) {
	query := `
		INSERT INTO stock_levels (warehouse_id, variant_id, quantity, min_quantity, updated_at)
		VALUES ($1, $2, $3, 0, now())
		ON CONFLICT (warehouse_id, variant_id)
		DO UPDATE SET quantity = stock_levels.quantity + $3, updated_at = now()
		RETURNING quantity`
	var quantity int64
	err := r.q.QueryRow(context.Background(), query, warehouseID, variantID, delta).Scan(&quantity)
	if err != nil {
		return 0, fmt.Errorf("apply stock delta: %w", err)
	}
	return quantity, nil
}

// Upsert fija quantity y min_quantity de forma absoluta (ajuste directo).
func (r *StockLevelRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (warehouse_id, variant_id, quantity, min_quantity, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (warehouse_id, variant_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, min_quantity = EXCLUDED.min_quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		level.WarehouseID, level.VariantID, level.Quantity, level.MinQuantity,
	)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}

// List listado filtrado y paginado del libro, enriquecido con la variante y
// la bodega. Los filtros se arman con placeholders, nunca interpolando valores.
func (r *StockLevelRepo) List(filter repository.StockLevelFilter, limit, offset int) ([]*repository.StockLevelRow, int64, error) {
	where := ` WHERE true`
	args := []any{}
	if filter.WarehouseID != "" {
		args = append(args, filter.WarehouseID)
		where += fmt.Sprintf(" AND s.warehouse_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, filter.Search)
		where += fmt.Sprintf(" AND (v.sku ILIKE '%%' || $%d || '%%' OR v.name ILIKE '%%' || $%d || '%%')", len(args), len(args))
	}
	if filter.LowOnly {
		where += " AND s.quantity <= s.min_quantity"
	}

	from := `
		FROM stock_levels s
		JOIN variants v ON v.id = s.variant_id
		JOIN warehouses w ON w.id = s.warehouse_id`

	var total int64
	if err := r.q.QueryRow(context.Background(), "SELECT count(*)"+from+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock levels: %w", err)
	}

	args = append(args, limit, offset)
	query := `
		SELECT s.warehouse_id, w.name, s.variant_id, v.sku, v.name, s.quantity, s.min_quantity, v.price` +
		from + where + fmt.Sprintf(" ORDER BY v.sku, w.code LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()
	list, err := scanStockLevelRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// LowStock filas con quantity <= min_quantity, opcionalmente por bodega,
// ordenadas por mayor déficit primero.
func (r *StockLevelRepo) LowStock(warehouseID string) ([]*repository.StockLevelRow, error) {
	query := `
		SELECT s.warehouse_id, w.name, s.variant_id, v.sku, v.name, s.quantity, s.min_quantity, v.price
		FROM stock_levels s
		JOIN variants v ON v.id = s.variant_id
		JOIN warehouses w ON w.id = s.warehouse_id
		WHERE s.quantity <= s.min_quantity`
	args := []any{}
	if warehouseID != "" {
		args = append(args, warehouseID)
		query += " AND s.warehouse_id = $1"
	}
	query += " ORDER BY (s.min_quantity - s.quantity) DESC, v.sku"
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()
	return scanStockLevelRows(rows)
}

// Stats filas totales, filas bajo reorden y valor total (Σ quantity × price),
// opcionalmente por bodega.
func (r *StockLevelRepo) Stats(warehouseID string) (*repository.StockStats, error) {
	query := `
		SELECT count(*),
		       count(*) FILTER (WHERE s.quantity <= s.min_quantity),
		       COALESCE(sum(s.quantity * v.price), 0)
		FROM stock_levels s
		JOIN variants v ON v.id = s.variant_id`
	args := []any{}
	if warehouseID != "" {
		args = append(args, warehouseID)
		query += " WHERE s.warehouse_id = $1"
	}
	var stats repository.StockStats
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&stats.TotalItems, &stats.LowStockCount, &stats.TotalValue,
	)
	if err != nil {
		return nil, fmt.Errorf("stock stats: %w", err)
	}
	return &stats, nil
}

func scanStockLevelRows(rows pgx.Rows) ([]*repository.StockLevelRow, error) {
	var list []*repository.StockLevelRow
	for rows.Next() {
		var row repository.StockLevelRow
		if err := rows.Scan(&row.WarehouseID, &row.WarehouseName, &row.VariantID, &row.SKU,
			&row.VariantName, &row.Quantity, &row.MinQuantity, &row.Price); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
