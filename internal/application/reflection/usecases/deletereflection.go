package usecases

import (
	"context"

	"github.com/inkfolio/inkfolio/internal/domain/reflection"
	"github.com/inkfolio/inkfolio/internal/shared/errors"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
)

type DeleteReflectionUseCase struct {
	repo   reflection.Repository
	logger logger.Interface
}

func NewDeleteReflectionUseCase(repo reflection.Repository, logger logger.Interface) *DeleteReflectionUseCase {
	return &DeleteReflectionUseCase{repo: repo, logger: logger}
}

func (uc *DeleteReflectionUseCase) Execute(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to delete reflection", "id", id, "error", err)
		return err
	}
	if !deleted {
		return errors.NewNotFoundError("reflection not found")
	}

	uc.logger.Infow("reflection deleted", "id", id)
	return nil
}
