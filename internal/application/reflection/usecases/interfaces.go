package usecases

import (
	"context"

	"github.com/inkfolio/inkfolio/internal/application/reflection/dto"
)

type CreateReflectionExecutor interface {
	Execute(ctx context.Context, cmd CreateReflectionCommand) (*dto.ReflectionDTO, error)
}

type GetReflectionExecutor interface {
	Execute(ctx context.Context, query GetReflectionQuery) (*dto.ReflectionDTO, error)
}

type ListReflectionsExecutor interface {
	Execute(ctx context.Context, query ListReflectionsQuery) (*dto.ReflectionListDTO, error)
}

type UpdateReflectionExecutor interface {
	Execute(ctx context.Context, cmd UpdateReflectionCommand) (*dto.ReflectionDTO, error)
}

type DeleteReflectionExecutor interface {
	Execute(ctx context.Context, id string) error
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) []dto.CategoryDTO
}
