package usecases

import (
	"context"
	"time"

	"github.com/inkfolio/inkfolio/internal/application/contact/dto"
	"github.com/inkfolio/inkfolio/internal/domain/contact"
	vo "github.com/inkfolio/inkfolio/internal/domain/contact/valueobjects"
	"github.com/inkfolio/inkfolio/internal/shared/biztime"
	"github.com/inkfolio/inkfolio/internal/shared/errors"
	"github.com/inkfolio/inkfolio/internal/shared/goroutine"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
	"github.com/inkfolio/inkfolio/internal/shared/utils/logutil"
)

const notifyTimeout = 30 * time.Second

type SubmitContactCommand struct {
	Name    string
	Email   string
	Reason  string
	Message string
}

type SubmitContactUseCase struct {
	repo     contact.Repository
	notifier SubmissionNotifier
	tasks    *goroutine.Group
	logger   logger.Interface
	now      biztime.Clock
}

func NewSubmitContactUseCase(
	repo contact.Repository,
	notifier SubmissionNotifier,
	tasks *goroutine.Group,
	logger logger.Interface,
) *SubmitContactUseCase {
	return &SubmitContactUseCase{
		repo:     repo,
		notifier: notifier,
		tasks:    tasks,
		logger:   logger,
		now:      biztime.NowUTC,
	}
}

// Execute validates fully before anything is stored. The owner notification
// runs in the background and cannot fail the request.
func (uc *SubmitContactUseCase) Execute(ctx context.Context, cmd SubmitContactCommand) (*dto.SubmitContactResult, error) {
	reason, err := vo.NewReason(cmd.Reason)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	submission, err := contact.NewSubmission(cmd.Name, cmd.Email, reason, cmd.Message, uc.now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, submission); err != nil {
		uc.logger.Errorw("failed to save contact submission", "error", err)
		return nil, err
	}

	uc.logger.Infow("contact submission received",
		"id", submission.ID(),
		"reason", submission.Reason(),
		"email", logutil.MaskEmail(submission.Email()))

	if uc.notifier != nil {
		uc.tasks.Go("contact-notify", func() {
			notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			if err := uc.notifier.NotifyNewSubmission(notifyCtx, submission); err != nil {
				uc.logger.Warnw("failed to send contact notification", "id", submission.ID(), "error", err)
			}
		})
	}

	return &dto.SubmitContactResult{
		ID:      submission.ID(),
		Message: dto.ThankYouMessage,
	}, nil
}
