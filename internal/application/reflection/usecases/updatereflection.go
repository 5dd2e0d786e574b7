package usecases

import (
	"context"
	"time"

	"github.com/inkfolio/inkfolio/internal/application/reflection/dto"
	"github.com/inkfolio/inkfolio/internal/domain/reflection"
	vo "github.com/inkfolio/inkfolio/internal/domain/reflection/valueobjects"
	"github.com/inkfolio/inkfolio/internal/shared/biztime"
	"github.com/inkfolio/inkfolio/internal/shared/errors"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
	"github.com/inkfolio/inkfolio/internal/shared/services/markdown"
)

// UpdateReflectionCommand holds a partial update; nil fields stay as stored.
type UpdateReflectionCommand struct {
	ID        string
	Title     *string
	Excerpt   *string
	Content   *string
	Category  *string
	Tags      *[]string
	Published *bool
	Date      *time.Time
}

type UpdateReflectionUseCase struct {
	repo     reflection.Repository
	renderer markdown.Renderer
	logger   logger.Interface
	now      biztime.Clock
}

func NewUpdateReflectionUseCase(
	repo reflection.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *UpdateReflectionUseCase {
	return &UpdateReflectionUseCase{
		repo:     repo,
		renderer: renderer,
		logger:   logger,
		now:      biztime.NowUTC,
	}
}

func (uc *UpdateReflectionUseCase) Execute(ctx context.Context, cmd UpdateReflectionCommand) (*dto.ReflectionDTO, error) {
	patch := reflection.Patch{
		Title:     cmd.Title,
		Excerpt:   cmd.Excerpt,
		Content:   cmd.Content,
		Tags:      cmd.Tags,
		Published: cmd.Published,
		Date:      cmd.Date,
	}
	if cmd.Category != nil {
		category, err := vo.NewCategory(*cmd.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		patch.Category = &category
	}

	if patch.IsEmpty() {
		return nil, errors.NewValidationError("No update data provided")
	}

	entity, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := entity.Apply(patch, uc.now()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, entity); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to update reflection", "id", cmd.ID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("reflection updated", "id", entity.ID())

	return toDTO(entity, uc.renderer)
}
