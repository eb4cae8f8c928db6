package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo adaptador de solo lectura hacia el catálogo, salvo el contador
// agregado de stock que este subsistema mantiene. Pasar pool o tx (Querier).
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador.
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

// GetByID obtiene una variante por ID (nil si no existe).
func (r *VariantRepo) GetByID(id string) (*entity.Variant, error) {
	// Un id que no es UUID no puede existir en el esquema.
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	query := `
		SELECT id, sku, name, price, stock, image_url, created_at, updated_at
		FROM variants WHERE id = $1`
	var v entity.Variant
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.SKU, &v.Name, &v.Price, &v.Stock, &v.ImageURL, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	return &v, nil
}

// AdjustStock incrementa el agregado de forma atómica; el incremento en SQL
// serializa a los escritores concurrentes sobre la misma variante.
func (r *VariantRepo) AdjustStock(variantID string, delta int64) error {
	if uuid.Validate(variantID) != nil {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE variants SET stock = stock + $2, updated_at = now() WHERE id = $1`,
		variantID, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust variant stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search busca por subcadena de SKU o nombre (case-insensitive), hasta limit
// resultados, ordenando por SKU.
func (r *VariantRepo) Search(q string, limit int) ([]*entity.Variant, error) {
	query := `
		SELECT id, sku, name, price, stock, image_url, created_at, updated_at
		FROM variants
		WHERE sku ILIKE '%' || $1 || '%' OR name ILIKE '%' || $1 || '%'
		ORDER BY sku LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, q, limit)
	if err != nil {
		return nil, fmt.Errorf("search variants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Variant
	for rows.Next() {
		var v entity.Variant
		if err := rows.Scan(&v.ID, &v.SKU, &v.Name, &v.Price, &v.Stock, &v.ImageURL, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
