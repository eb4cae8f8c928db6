package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/usecase"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

func int64p(n int64) *int64 { return &n }

// IDs con forma de UUID: los filtros y rutas del libro los validan antes de
// tocar la base.
const (
	stockWh1  = "11111111-1111-1111-1111-111111111111"
	stockVar1 = "22222222-2222-2222-2222-222222222222"
	stockVar2 = "33333333-3333-3333-3333-333333333333"
)

type stockFixture struct {
	uc       *usecase.StockUseCase
	levels   *fakeLevelRepo
	variants *fakeVariantRepo
	tx       *fakeTxRunner
}

func newStockFixture() *stockFixture {
	variants := newFakeVariantRepo()
	variants.variants[stockVar1] = &entity.Variant{ID: stockVar1, SKU: "SKU-001", Name: "Camiseta básica", Price: decimal.NewFromInt(100_000)}
	variants.variants[stockVar2] = &entity.Variant{ID: stockVar2, SKU: "SKU-002", Name: "Pantalón clásico", Price: decimal.NewFromInt(250_000)}

	warehouses := newFakeWarehouseRepo()
	warehouses.warehouses[stockWh1] = &entity.Warehouse{ID: stockWh1, Name: "Bodega principal", Code: "BOD-01", IsActive: true}

	levels := newFakeLevelRepo(variants)
	tx := &fakeTxRunner{levels: levels, variants: variants}
	return &stockFixture{
		uc:       usecase.NewStockUseCase(levels, warehouses, variants, tx),
		levels:   levels,
		variants: variants,
		tx:       tx,
	}
}

func (f *stockFixture) seed(warehouseID, variantID string, qty, min int64) {
	f.levels.levels[levelKey(warehouseID, variantID)] = &entity.StockLevel{
		WarehouseID: warehouseID, VariantID: variantID, Quantity: qty, MinQuantity: min,
	}
	f.variants.variants[variantID].Stock += qty
}

func TestStockAdjust(t *testing.T) {
	f := newStockFixture()
	ctx := context.Background()

	// Primera fila del libro por ajuste directo.
	err := f.uc.Adjust(ctx, stockWh1, stockVar1, dto.AdjustStockLevelRequest{Quantity: int64p(12), MinQuantity: int64p(5)})
	require.NoError(t, err)
	level, err := f.levels.Get(stockWh1, stockVar1)
	require.NoError(t, err)
	assert.EqualValues(t, 12, level.Quantity)
	assert.EqualValues(t, 5, level.MinQuantity)
	assert.EqualValues(t, 12, f.variants.variants[stockVar1].Stock,
		"el agregado de la variante sigue la corrección manual")
	assert.Equal(t, 1, f.tx.runs, "el ajuste corre dentro de una transacción")

	// Solo minQuantity: la cantidad no cambia y el agregado tampoco.
	err = f.uc.Adjust(ctx, stockWh1, stockVar1, dto.AdjustStockLevelRequest{MinQuantity: int64p(3)})
	require.NoError(t, err)
	level, _ = f.levels.Get(stockWh1, stockVar1)
	assert.EqualValues(t, 12, level.Quantity)
	assert.EqualValues(t, 3, level.MinQuantity)
	assert.EqualValues(t, 12, f.variants.variants[stockVar1].Stock)

	// Bajar la cantidad descuenta el agregado por la diferencia.
	err = f.uc.Adjust(ctx, stockWh1, stockVar1, dto.AdjustStockLevelRequest{Quantity: int64p(8)})
	require.NoError(t, err)
	assert.EqualValues(t, 8, f.variants.variants[stockVar1].Stock)
}

// Si el agregado no puede actualizarse, la fila del libro tampoco cambia:
// libro y agregado viven o mueren en la misma transacción.
func TestStockAdjust_FalloRevierteLibro(t *testing.T) {
	f := newStockFixture()
	ctx := context.Background()
	f.seed(stockWh1, stockVar1, 10, 2)

	f.variants.failAdjust = errors.New("conexión perdida")
	err := f.uc.Adjust(ctx, stockWh1, stockVar1, dto.AdjustStockLevelRequest{Quantity: int64p(4)})
	require.Error(t, err)

	level, _ := f.levels.Get(stockWh1, stockVar1)
	assert.EqualValues(t, 10, level.Quantity, "la fila del libro vuelve a su valor previo")
	assert.EqualValues(t, 10, f.variants.variants[stockVar1].Stock)
}

func TestStockAdjust_Validaciones(t *testing.T) {
	f := newStockFixture()
	ctx := context.Background()

	err := f.uc.Adjust(ctx, stockWh1, stockVar1, dto.AdjustStockLevelRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin campos no hay nada que ajustar")

	err = f.uc.Adjust(ctx, stockWh1, stockVar1, dto.AdjustStockLevelRequest{Quantity: int64p(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el libro nunca acepta cantidades negativas")

	err = f.uc.Adjust(ctx, stockWh1, stockVar1, dto.AdjustStockLevelRequest{MinQuantity: int64p(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = f.uc.Adjust(ctx, "44444444-4444-4444-4444-444444444444", stockVar1, dto.AdjustStockLevelRequest{Quantity: int64p(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = f.uc.Adjust(ctx, stockWh1, "44444444-4444-4444-4444-444444444444", dto.AdjustStockLevelRequest{Quantity: int64p(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Zero(t, f.tx.runs, "ninguna validación fallida llega a abrir transacción")
}

func TestStockLowStock(t *testing.T) {
	f := newStockFixture()
	f.seed(stockWh1, stockVar1, 2, 5)  // bajo
	f.seed(stockWh1, stockVar2, 20, 5) // sano

	low, err := f.uc.LowStock(stockWh1)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "SKU-001", low[0].SKU)
	assert.True(t, low[0].IsLow)

	_, err = f.uc.LowStock("no-es-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el filtro por bodega exige un UUID")
}

func TestStockStats_Valoracion(t *testing.T) {
	f := newStockFixture()
	f.seed(stockWh1, stockVar1, 2, 5) // 2 × 100.000
	f.seed(stockWh1, stockVar2, 4, 1) // 4 × 250.000

	stats, err := f.uc.Stats(stockWh1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalItems)
	assert.EqualValues(t, 1, stats.LowStockCount)
	assert.True(t, decimal.NewFromInt(1_200_000).Equal(stats.TotalValue),
		"valor total = Σ cantidad × precio de la variante")

	_, err = f.uc.Stats("no-es-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockList_FiltrosYPaginacion(t *testing.T) {
	f := newStockFixture()
	f.seed(stockWh1, stockVar1, 2, 5)
	f.seed(stockWh1, stockVar2, 20, 5)

	// Paginación por defecto.
	resp, err := f.uc.List(repository.StockLevelFilter{WarehouseID: stockWh1}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 1, resp.Page.Page)
	assert.Equal(t, 20, resp.Page.Limit)
	assert.EqualValues(t, 2, resp.Page.Total)

	// Búsqueda por nombre de variante.
	resp, err = f.uc.List(repository.StockLevelFilter{Search: "pantalón"}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "SKU-002", resp.Items[0].SKU)

	// Solo bajo stock.
	resp, err = f.uc.List(repository.StockLevelFilter{LowOnly: true}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "SKU-001", resp.Items[0].SKU)

	// Página fuera de rango: vacía pero con el total correcto.
	resp, err = f.uc.List(repository.StockLevelFilter{}, dto.PageRequest{Page: 9, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.EqualValues(t, 2, resp.Page.Total)

	// Filtro por bodega que no es UUID.
	_, err = f.uc.List(repository.StockLevelFilter{WarehouseID: "no-es-uuid"}, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVariantSearch(t *testing.T) {
	variants := newFakeVariantRepo()
	variants.variants[stockVar1] = &entity.Variant{ID: stockVar1, SKU: "SKU-001", Name: "Camiseta básica", Price: decimal.NewFromInt(100_000), Stock: 7}
	variants.variants[stockVar2] = &entity.Variant{ID: stockVar2, SKU: "SKU-002", Name: "Camiseta estampada", Price: decimal.NewFromInt(120_000)}
	variants.variants["v3"] = &entity.Variant{ID: "v3", SKU: "ZAP-001", Name: "Zapato cuero", Price: decimal.NewFromInt(300_000)}
	uc := usecase.NewVariantSearchUseCase(variants)

	results, err := uc.Search("camiseta")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "SKU-001", results[0].SKU)
	assert.EqualValues(t, 7, results[0].Stock, "la búsqueda expone el stock agregado")

	_, err = uc.Search("c")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "mínimo dos caracteres")
	_, err = uc.Search("  c  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "los espacios no cuentan")

	// El resultado se corta en diez variantes.
	for i := 0; i < 15; i++ {
		id := string(rune('a' + i))
		variants.variants[id] = &entity.Variant{ID: id, SKU: "CAM-" + id, Name: "Camisa " + id}
	}
	results, err = uc.Search("cam")
	require.NoError(t, err)
	assert.Len(t, results, 10)
}
