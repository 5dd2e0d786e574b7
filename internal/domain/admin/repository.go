package admin

import (
	"context"
	"time"
)

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	// GetByTokenHash returns the session whether or not it has expired;
	// callers decide validity. Unknown hashes yield a not found AppError.
	GetByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	// DeleteByTokenHash reports whether a session was removed.
	DeleteByTokenHash(ctx context.Context, tokenHash string) (bool, error)
	// DeleteExpired removes every session with expires_at <= now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
