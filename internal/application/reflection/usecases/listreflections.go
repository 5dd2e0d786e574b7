package usecases

import (
	"context"

	"github.com/inkfolio/inkfolio/internal/application/reflection/dto"
	"github.com/inkfolio/inkfolio/internal/domain/reflection"
	vo "github.com/inkfolio/inkfolio/internal/domain/reflection/valueobjects"
	"github.com/inkfolio/inkfolio/internal/shared/errors"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
	"github.com/inkfolio/inkfolio/internal/shared/services/markdown"
)

type ListReflectionsQuery struct {
	// Category is empty for every category.
	Category      string
	PublishedOnly bool
}

type ListReflectionsUseCase struct {
	repo     reflection.Repository
	renderer markdown.Renderer
	logger   logger.Interface
}

func NewListReflectionsUseCase(
	repo reflection.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *ListReflectionsUseCase {
	return &ListReflectionsUseCase{
		repo:     repo,
		renderer: renderer,
		logger:   logger,
	}
}

func (uc *ListReflectionsUseCase) Execute(ctx context.Context, query ListReflectionsQuery) (*dto.ReflectionListDTO, error) {
	filter := reflection.ListFilter{PublishedOnly: query.PublishedOnly}
	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Category = &category
	}

	items, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list reflections", "error", err)
		return nil, err
	}

	out := make([]*dto.ReflectionDTO, 0, len(items))
	for _, item := range items {
		d, err := toDTO(item, uc.renderer)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return &dto.ReflectionListDTO{
		Reflections: out,
		Total:       len(out),
		Categories:  dto.CategoryValues(),
	}, nil
}
