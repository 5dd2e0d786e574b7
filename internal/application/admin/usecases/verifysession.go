package usecases

import (
	"context"

	"github.com/inkfolio/inkfolio/internal/domain/admin"
	"github.com/inkfolio/inkfolio/internal/infrastructure/token"
	"github.com/inkfolio/inkfolio/internal/shared/biztime"
	"github.com/inkfolio/inkfolio/internal/shared/errors"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
)

type VerifySessionUseCase struct {
	sessions admin.SessionRepository
	tokens   token.SessionTokenGenerator
	logger   logger.Interface
	now      biztime.Clock
}

func NewVerifySessionUseCase(
	sessions admin.SessionRepository,
	tokens token.SessionTokenGenerator,
	logger logger.Interface,
) *VerifySessionUseCase {
	return &VerifySessionUseCase{
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
		now:      biztime.NowUTC,
	}
}

// Execute reports whether token names a live session. An expired row is
// removed on the spot; failing to remove it does not change the answer.
func (uc *VerifySessionUseCase) Execute(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	hash := uc.tokens.Hash(token)
	session, err := uc.sessions.GetByTokenHash(ctx, hash)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return false, nil
		}
		uc.logger.Errorw("failed to load session", "error", err)
		return false, err
	}

	if session.IsValidAt(uc.now()) {
		return true, nil
	}

	if _, err := uc.sessions.DeleteByTokenHash(ctx, hash); err != nil {
		uc.logger.Warnw("failed to delete expired session", "error", err)
	}
	return false, nil
}
