package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bodega-api/internal/application/usecase"
)

// VariantHandler búsqueda de variantes para formularios de movimientos.
type VariantHandler struct {
	uc *usecase.VariantSearchUseCase
}

// NewVariantHandler construye el handler.
func NewVariantHandler(uc *usecase.VariantSearchUseCase) *VariantHandler {
	return &VariantHandler{uc: uc}
}

// Search godoc
// @Summary      Buscar variantes por SKU o nombre (mínimo 2 caracteres, top 10)
// @Tags         variants
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  true  "Texto a buscar"
// @Success      200  {array}   dto.VariantSearchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/variants/search [get]
func (h *VariantHandler) Search(c *fiber.Ctx) error {
	items, err := h.uc.Search(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}
