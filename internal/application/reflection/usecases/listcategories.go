package usecases

import (
	"context"

	"github.com/inkfolio/inkfolio/internal/application/reflection/dto"
)

type ListCategoriesUseCase struct{}

func NewListCategoriesUseCase() *ListCategoriesUseCase {
	return &ListCategoriesUseCase{}
}

func (uc *ListCategoriesUseCase) Execute(_ context.Context) []dto.CategoryDTO {
	return dto.ToCategoryDTOs()
}
