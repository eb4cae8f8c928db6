package usecase

import (
	"strings"

	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// variantSearchLimit máximo de resultados para el formulario de autoría.
const variantSearchLimit = 10

// VariantSearchUseCase búsqueda de variantes (por SKU o nombre) usada
// exclusivamente para poblar formularios de creación de movimientos.
type VariantSearchUseCase struct {
	repo repository.VariantRepository
}

// NewVariantSearchUseCase construye el caso de uso.
func NewVariantSearchUseCase(repo repository.VariantRepository) *VariantSearchUseCase {
	return &VariantSearchUseCase{repo: repo}
}

// Search exige al menos 2 caracteres y devuelve hasta 10 variantes.
func (uc *VariantSearchUseCase) Search(q string) ([]dto.VariantSearchResponse, error) {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < 2 {
		return nil, domain.ErrInvalidInput
	}
	variants, err := uc.repo.Search(q, variantSearchLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VariantSearchResponse, 0, len(variants))
	for _, v := range variants {
		items = append(items, dto.VariantSearchResponse{
			ID:       v.ID,
			SKU:      v.SKU,
			Name:     v.Name,
			Price:    v.Price,
			Stock:    v.Stock,
			ImageURL: v.ImageURL,
		})
	}
	return items, nil
}
