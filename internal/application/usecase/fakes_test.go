package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// Dobles en memoria de los puertos que consumen los casos de uso de registro
// y de stock. Replican la semántica de las consultas reales: unicidad de
// código, baja lógica y filtrado del libro.

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{}}
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	for _, existing := range r.warehouses {
		if existing.Code == w.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *w
	r.warehouses[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	cp := *w
	r.warehouses[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) List(includeInactive bool) ([]*entity.Warehouse, error) {
	var list []*entity.Warehouse
	for _, w := range r.warehouses {
		if !w.IsActive && !includeInactive {
			continue
		}
		cp := *w
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, nil
}

func (r *fakeWarehouseRepo) Deactivate(id string) (bool, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return false, nil
	}
	w.IsActive = false
	return true, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{}}
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	for _, existing := range r.suppliers {
		if existing.Code == s.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error {
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) List(includeInactive bool) ([]*entity.Supplier, error) {
	var list []*entity.Supplier
	for _, s := range r.suppliers {
		if !s.IsActive && !includeInactive {
			continue
		}
		cp := *s
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, nil
}

func (r *fakeSupplierRepo) Deactivate(id string) (bool, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return false, nil
	}
	s.IsActive = false
	return true, nil
}

// fakeVariantRepo catálogo mínimo. failAdjust permite simular un fallo de
// AdjustStock dentro de la transacción de ajuste.
type fakeVariantRepo struct {
	variants   map[string]*entity.Variant
	failAdjust error
}

func newFakeVariantRepo() *fakeVariantRepo {
	return &fakeVariantRepo{variants: map[string]*entity.Variant{}}
}

func (r *fakeVariantRepo) GetByID(id string) (*entity.Variant, error) {
	v, ok := r.variants[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVariantRepo) AdjustStock(variantID string, delta int64) error {
	if r.failAdjust != nil {
		return r.failAdjust
	}
	v, ok := r.variants[variantID]
	if !ok {
		return domain.ErrNotFound
	}
	v.Stock += delta
	return nil
}

func (r *fakeVariantRepo) Search(q string, limit int) ([]*entity.Variant, error) {
	q = strings.ToLower(q)
	var list []*entity.Variant
	for _, v := range r.variants {
		if strings.Contains(strings.ToLower(v.SKU), q) || strings.Contains(strings.ToLower(v.Name), q) {
			cp := *v
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SKU < list[j].SKU })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// fakeLevelRepo libro en memoria. Mantiene las filas como entidades y las
// proyecta a StockLevelRow con los datos del catálogo, como hace el JOIN real.
type fakeLevelRepo struct {
	levels   map[string]*entity.StockLevel
	variants *fakeVariantRepo
}

func newFakeLevelRepo(variants *fakeVariantRepo) *fakeLevelRepo {
	return &fakeLevelRepo{levels: map[string]*entity.StockLevel{}, variants: variants}
}

func levelKey(warehouseID, variantID string) string { return warehouseID + "|" + variantID }

func (r *fakeLevelRepo) Get(warehouseID, variantID string) (*entity.StockLevel, error) {
	l, ok := r.levels[levelKey(warehouseID, variantID)]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLevelRepo) GetForUpdate(warehouseID, variantID string) (*entity.StockLevel, error) {
	return r.Get(warehouseID, variantID)
}

func (r *fakeLevelRepo) ApplyDelta(warehouseID, variantID string, delta int64) (int64, error) {
	key := levelKey(warehouseID, variantID)
	l, ok := r.levels[key]
	if !ok {
		l = &entity.StockLevel{WarehouseID: warehouseID, VariantID: variantID}
		r.levels[key] = l
	}
	l.Quantity += delta
	return l.Quantity, nil
}

func (r *fakeLevelRepo) Upsert(level *entity.StockLevel) error {
	cp := *level
	r.levels[levelKey(level.WarehouseID, level.VariantID)] = &cp
	return nil
}

func (r *fakeLevelRepo) rows(filter repository.StockLevelFilter) []*repository.StockLevelRow {
	var out []*repository.StockLevelRow
	for _, l := range r.levels {
		if filter.WarehouseID != "" && l.WarehouseID != filter.WarehouseID {
			continue
		}
		if filter.LowOnly && l.Quantity > l.MinQuantity {
			continue
		}
		row := &repository.StockLevelRow{
			WarehouseID: l.WarehouseID,
			VariantID:   l.VariantID,
			Quantity:    l.Quantity,
			MinQuantity: l.MinQuantity,
		}
		if v, ok := r.variants.variants[l.VariantID]; ok {
			row.SKU, row.VariantName, row.Price = v.SKU, v.Name, v.Price
		}
		if filter.Search != "" {
			q := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(row.SKU), q) &&
				!strings.Contains(strings.ToLower(row.VariantName), q) {
				continue
			}
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out
}

func (r *fakeLevelRepo) List(filter repository.StockLevelFilter, limit, offset int) ([]*repository.StockLevelRow, int64, error) {
	rows := r.rows(filter)
	total := int64(len(rows))
	if offset >= len(rows) {
		return nil, total, nil
	}
	rows = rows[offset:]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, total, nil
}

func (r *fakeLevelRepo) LowStock(warehouseID string) ([]*repository.StockLevelRow, error) {
	return r.rows(repository.StockLevelFilter{WarehouseID: warehouseID, LowOnly: true}), nil
}

func (r *fakeLevelRepo) Stats(warehouseID string) (*repository.StockStats, error) {
	stats := &repository.StockStats{TotalValue: decimal.Zero}
	for _, row := range r.rows(repository.StockLevelFilter{WarehouseID: warehouseID}) {
		stats.TotalItems++
		if row.Quantity <= row.MinQuantity {
			stats.LowStockCount++
		}
		stats.TotalValue = stats.TotalValue.Add(row.Price.Mul(decimal.NewFromInt(row.Quantity)))
	}
	return stats, nil
}

// fakeTxRunner emula Commit/Rollback: copia el estado del libro y del
// catálogo antes del callback y lo restaura si falla, como la tx real.
type fakeTxRunner struct {
	levels   *fakeLevelRepo
	variants *fakeVariantRepo
	runs     int
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	levelRepo repository.StockLevelRepository,
	variantRepo repository.VariantRepository,
	seqRepo repository.MovementSequenceRepository,
) error) error {
	t.runs++
	levelSnap := map[string]*entity.StockLevel{}
	for k, v := range t.levels.levels {
		cp := *v
		levelSnap[k] = &cp
	}
	stockSnap := map[string]int64{}
	for id, v := range t.variants.variants {
		stockSnap[id] = v.Stock
	}
	err := fn(nil, t.levels, t.variants, nil)
	if err != nil {
		t.levels.levels = levelSnap
		for id, stock := range stockSnap {
			t.variants.variants[id].Stock = stock
		}
	}
	return err
}
