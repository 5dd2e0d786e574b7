package usecases

import (
	"context"
	"time"

	"github.com/inkfolio/inkfolio/internal/domain/admin"
	"github.com/inkfolio/inkfolio/internal/infrastructure/auth"
	"github.com/inkfolio/inkfolio/internal/infrastructure/token"
	"github.com/inkfolio/inkfolio/internal/shared/biztime"
	"github.com/inkfolio/inkfolio/internal/shared/errors"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
	"github.com/inkfolio/inkfolio/internal/shared/utils/logutil"
)

type LoginCommand struct {
	Username  string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

type LoginUseCase struct {
	credentials auth.CredentialVerifier
	sessions    admin.SessionRepository
	tokens      token.SessionTokenGenerator
	ttl         time.Duration
	logger      logger.Interface
	now         biztime.Clock
}

func NewLoginUseCase(
	credentials auth.CredentialVerifier,
	sessions admin.SessionRepository,
	tokens token.SessionTokenGenerator,
	ttl time.Duration,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		credentials: credentials,
		sessions:    sessions,
		tokens:      tokens,
		ttl:         ttl,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

// Execute mints a session only for the configured credential pair. A failed
// attempt leaves the store untouched.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if !uc.credentials.Verify(cmd.Username, cmd.Password) {
		authErr := errors.NewInvalidCredentialsError()
		if errors.ShouldLogAuthError(authErr) {
			uc.logger.Warnw("admin login failed",
				"ip", cmd.IPAddress,
				"username", logutil.Truncate(cmd.Username, 64),
				"security_event", errors.IsSecurityEvent(authErr))
		}
		return nil, authErr
	}

	plain, hash, err := uc.tokens.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate session token", "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	session, err := admin.NewSession(hash, uc.ttl, cmd.IPAddress, cmd.UserAgent, uc.now())
	if err != nil {
		return nil, errors.NewInternalError("failed to create session")
	}

	if err := uc.sessions.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to store session", "error", err)
		return nil, err
	}

	uc.logger.Infow("admin logged in", "ip", cmd.IPAddress, "expires_at", session.ExpiresAt)

	return &LoginResult{Token: plain, ExpiresAt: session.ExpiresAt}, nil
}
