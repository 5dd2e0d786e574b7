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

type CreateReflectionCommand struct {
	Title     string
	Excerpt   string
	Content   string
	Category  string
	Tags      []string
	Published *bool
	Date      *time.Time
}

type CreateReflectionUseCase struct {
	repo     reflection.Repository
	renderer markdown.Renderer
	logger   logger.Interface
	now      biztime.Clock
}

func NewCreateReflectionUseCase(
	repo reflection.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *CreateReflectionUseCase {
	return &CreateReflectionUseCase{
		repo:     repo,
		renderer: renderer,
		logger:   logger,
		now:      biztime.NowUTC,
	}
}

func (uc *CreateReflectionUseCase) Execute(ctx context.Context, cmd CreateReflectionCommand) (*dto.ReflectionDTO, error) {
	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	published := true
	if cmd.Published != nil {
		published = *cmd.Published
	}

	entity, err := reflection.NewReflection(
		cmd.Title,
		cmd.Excerpt,
		cmd.Content,
		category,
		cmd.Tags,
		published,
		cmd.Date,
		uc.now(),
	)
	if err != nil {
		uc.logger.Warnw("invalid reflection", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, entity); err != nil {
		uc.logger.Errorw("failed to save reflection", "error", err)
		return nil, err
	}

	uc.logger.Infow("reflection created", "id", entity.ID(), "category", entity.Category())

	return toDTO(entity, uc.renderer)
}
