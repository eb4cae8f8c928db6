package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/usecase"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// StockHandler lecturas del libro de inventario y ajuste directo (protegido).
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar filas del libro de inventario
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  query  string  false  "Filtrar por bodega"
// @Param        search       query  string  false  "Subcadena de SKU o nombre"
// @Param        lowStock     query  bool    false  "Solo filas en nivel de reorden"
// @Param        page         query  int     false  "Página"  default(1)
// @Param        limit        query  int     false  "Límite"  default(20)
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/inventory/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	filter := repository.StockLevelFilter{
		WarehouseID: c.Query("warehouseId"),
		Search:      c.Query("search"),
		LowOnly:     c.QueryBool("lowStock"),
	}
	page := dto.PageRequest{Page: c.QueryInt("page", 1), Limit: c.QueryInt("limit", 20)}
	out, err := h.uc.List(filter, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Filas en nivel de reorden (quantity <= minQuantity)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  query  string  false  "Filtrar por bodega"
// @Success      200  {array}  dto.StockLevelResponse
// @Router       /api/inventory/stock/low [get]
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStock(c.Query("warehouseId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

// Stats godoc
// @Summary      Estadísticas del libro: filas, bajo stock y valor total
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  query  string  false  "Filtrar por bodega"
// @Success      200  {object}  dto.StockStatsResponse
// @Router       /api/inventory/stock/stats [get]
func (h *StockHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Query("warehouseId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajuste directo de una fila del libro (fuera del flujo de movimientos)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        warehouseId  path  string                       true  "ID de la bodega"
// @Param        variantId    path  string                       true  "ID de la variante"
// @Param        body         body  dto.AdjustStockLevelRequest  true  "quantity y/o minQuantity"
// @Success      204  "Sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/{warehouseId}/{variantId} [put]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Adjust(c.Context(), c.Params("warehouseId"), c.Params("variantId"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
