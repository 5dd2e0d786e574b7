package usecases

import (
	"context"

	"github.com/inkfolio/inkfolio/internal/domain/admin"
	"github.com/inkfolio/inkfolio/internal/shared/biztime"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
)

type SweepSessionsUseCase struct {
	sessions admin.SessionRepository
	logger   logger.Interface
	now      biztime.Clock
}

func NewSweepSessionsUseCase(sessions admin.SessionRepository, logger logger.Interface) *SweepSessionsUseCase {
	return &SweepSessionsUseCase{sessions: sessions, logger: logger, now: biztime.NowUTC}
}

// Execute deletes every session whose expiry is at or before now.
func (uc *SweepSessionsUseCase) Execute(ctx context.Context) (int64, error) {
	removed, err := uc.sessions.DeleteExpired(ctx, uc.now())
	if err != nil {
		uc.logger.Errorw("failed to sweep expired sessions", "error", err)
		return 0, err
	}
	uc.logger.Infow("expired sessions swept", "removed", removed)
	return removed, nil
}
