package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
)

// MovementHandler maneja el ciclo de vida de los movimientos (protegido).
type MovementHandler struct {
	create   *inventory.CreateMovementUseCase
	complete *inventory.CompleteMovementUseCase
	cancel   *inventory.CancelMovementUseCase
	query    *inventory.QueryMovementsUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(
	create *inventory.CreateMovementUseCase,
	complete *inventory.CompleteMovementUseCase,
	cancel *inventory.CancelMovementUseCase,
	query *inventory.QueryMovementsUseCase,
) *MovementHandler {
	return &MovementHandler{create: create, complete: complete, cancel: cancel, query: query}
}

// Create godoc
// @Summary      Crear movimiento de inventario (queda en PENDING)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "type, warehouseId, supplierId?, toWarehouseId?, orderId?, items[]"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.create.Create(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inventory.ToMovementResponse(mov, nil))
}

// List godoc
// @Summary      Listar movimientos con filtros
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        type         query  string  false  "IMPORT, EXPORT, TRANSFER_IN, TRANSFER_OUT, ADJUSTMENT, RETURN, DAMAGE, SALE"
// @Param        status       query  string  false  "PENDING, COMPLETED, CANCELLED"
// @Param        warehouseId  query  string  false  "Bodega origen o destino"
// @Param        supplierId   query  string  false  "Proveedor"
// @Param        search       query  string  false  "Subcadena del código"
// @Param        from         query  string  false  "Fecha desde (RFC 3339 o YYYY-MM-DD)"
// @Param        to           query  string  false  "Fecha hasta"
// @Param        page         query  int     false  "Página"  default(1)
// @Param        limit        query  int     false  "Límite"  default(20)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var in dto.ListMovementsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query params inválidos"})
	}
	out, err := h.query.List(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un movimiento con sus ítems
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Completar un movimiento (aplica el efecto sobre el libro)
// @Description  Transacción única: transición PENDING→COMPLETED condicionada,
// @Description  deltas del libro por ítem y agregado de cada variante. Si algo
// @Description  falla, todo se revierte y el movimiento queda en PENDING.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id}/complete [put]
func (h *MovementHandler) Complete(c *fiber.Ctx) error {
	if err := h.complete.Complete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimiento completado"})
}

// Cancel godoc
// @Summary      Cancelar un movimiento PENDING (sin efecto sobre el libro)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id}/cancel [put]
func (h *MovementHandler) Cancel(c *fiber.Ctx) error {
	if err := h.cancel.Cancel(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimiento cancelado"})
}
