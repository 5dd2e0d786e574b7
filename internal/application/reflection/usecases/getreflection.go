package usecases

import (
	"context"

	"github.com/inkfolio/inkfolio/internal/application/reflection/dto"
	"github.com/inkfolio/inkfolio/internal/domain/reflection"
	"github.com/inkfolio/inkfolio/internal/shared/errors"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
	"github.com/inkfolio/inkfolio/internal/shared/services/markdown"
)

type GetReflectionQuery struct {
	ID string
	// IncludeUnpublished is set only on admin paths.
	IncludeUnpublished bool
}

type GetReflectionUseCase struct {
	repo     reflection.Repository
	renderer markdown.Renderer
	logger   logger.Interface
}

func NewGetReflectionUseCase(
	repo reflection.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetReflectionUseCase {
	return &GetReflectionUseCase{
		repo:     repo,
		renderer: renderer,
		logger:   logger,
	}
}

// Execute hides drafts behind the same not found error as a missing id.
func (uc *GetReflectionUseCase) Execute(ctx context.Context, query GetReflectionQuery) (*dto.ReflectionDTO, error) {
	entity, err := uc.repo.GetByID(ctx, query.ID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to load reflection", "id", query.ID, "error", err)
		}
		return nil, err
	}

	if !entity.IsPublished() && !query.IncludeUnpublished {
		return nil, errors.NewNotFoundError("reflection not found")
	}

	return toDTO(entity, uc.renderer)
}
