package usecases

import (
	"context"

	"github.com/inkfolio/inkfolio/internal/application/contact/dto"
	"github.com/inkfolio/inkfolio/internal/domain/contact"
)

// SubmissionNotifier tells the site owner about a new submission.
type SubmissionNotifier interface {
	NotifyNewSubmission(ctx context.Context, s *contact.Submission) error
}

type SubmitContactExecutor interface {
	Execute(ctx context.Context, cmd SubmitContactCommand) (*dto.SubmitContactResult, error)
}

type ListSubmissionsExecutor interface {
	Execute(ctx context.Context, query ListSubmissionsQuery) ([]*dto.SubmissionDTO, error)
}

type UpdateSubmissionStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateSubmissionStatusCommand) (*dto.SubmissionDTO, error)
}
