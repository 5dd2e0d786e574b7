package usecases

import (
	"context"

	"github.com/inkfolio/inkfolio/internal/application/contact/dto"
	"github.com/inkfolio/inkfolio/internal/domain/contact"
	vo "github.com/inkfolio/inkfolio/internal/domain/contact/valueobjects"
	"github.com/inkfolio/inkfolio/internal/shared/errors"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
)

type ListSubmissionsQuery struct {
	// Status is empty for every status.
	Status string
}

type ListSubmissionsUseCase struct {
	repo   contact.Repository
	logger logger.Interface
}

func NewListSubmissionsUseCase(repo contact.Repository, logger logger.Interface) *ListSubmissionsUseCase {
	return &ListSubmissionsUseCase{repo: repo, logger: logger}
}

func (uc *ListSubmissionsUseCase) Execute(ctx context.Context, query ListSubmissionsQuery) ([]*dto.SubmissionDTO, error) {
	var status *vo.SubmissionStatus
	if query.Status != "" {
		s, err := vo.NewSubmissionStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		status = &s
	}

	items, err := uc.repo.List(ctx, status)
	if err != nil {
		uc.logger.Errorw("failed to list contact submissions", "error", err)
		return nil, err
	}

	return dto.ToSubmissionDTOs(items), nil
}
