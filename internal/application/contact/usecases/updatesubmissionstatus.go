package usecases

import (
	"context"

	"github.com/inkfolio/inkfolio/internal/application/contact/dto"
	"github.com/inkfolio/inkfolio/internal/domain/contact"
	vo "github.com/inkfolio/inkfolio/internal/domain/contact/valueobjects"
	"github.com/inkfolio/inkfolio/internal/shared/biztime"
	"github.com/inkfolio/inkfolio/internal/shared/errors"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
)

type UpdateSubmissionStatusCommand struct {
	ID     string
	Status string
}

type UpdateSubmissionStatusUseCase struct {
	repo   contact.Repository
	logger logger.Interface
	now    biztime.Clock
}

func NewUpdateSubmissionStatusUseCase(repo contact.Repository, logger logger.Interface) *UpdateSubmissionStatusUseCase {
	return &UpdateSubmissionStatusUseCase{repo: repo, logger: logger, now: biztime.NowUTC}
}

func (uc *UpdateSubmissionStatusUseCase) Execute(ctx context.Context, cmd UpdateSubmissionStatusCommand) (*dto.SubmissionDTO, error) {
	status, err := vo.NewSubmissionStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	submission, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := submission.ChangeStatus(status, uc.now()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.UpdateStatus(ctx, submission); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to update submission status", "id", cmd.ID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("submission status changed", "id", cmd.ID, "status", status)
	return dto.ToSubmissionDTO(submission), nil
}
