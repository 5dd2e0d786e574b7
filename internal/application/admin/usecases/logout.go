package usecases

import (
	"context"

	"github.com/inkfolio/inkfolio/internal/domain/admin"
	"github.com/inkfolio/inkfolio/internal/infrastructure/token"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
)

type LogoutUseCase struct {
	sessions admin.SessionRepository
	tokens   token.SessionTokenGenerator
	logger   logger.Interface
}

func NewLogoutUseCase(
	sessions admin.SessionRepository,
	tokens token.SessionTokenGenerator,
	logger logger.Interface,
) *LogoutUseCase {
	return &LogoutUseCase{sessions: sessions, tokens: tokens, logger: logger}
}

// Execute is idempotent; it reports whether a session was actually removed.
func (uc *LogoutUseCase) Execute(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	removed, err := uc.sessions.DeleteByTokenHash(ctx, uc.tokens.Hash(token))
	if err != nil {
		uc.logger.Errorw("failed to delete session", "error", err)
		return false, err
	}
	if removed {
		uc.logger.Infow("admin logged out")
	}
	return removed, nil
}
