package usecases

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfolio/inkfolio/internal/domain/admin"
	"github.com/inkfolio/inkfolio/internal/infrastructure/token"
	"github.com/inkfolio/inkfolio/internal/shared/biztime"
	"github.com/inkfolio/inkfolio/internal/shared/errors"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
)

const ttl = 24 * time.Hour

var loginTime = time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	repo   *memorySessionRepository
	login  *LoginUseCase
	verify *VerifySessionUseCase
	logout *LogoutUseCase
	sweep  *SweepSessionsUseCase
}

func newFixture() *fixture {
	repo := newMemorySessionRepository()
	tokens := token.NewSessionTokenGenerator()
	log := logger.Discard()

	f := &fixture{
		repo:   repo,
		login:  NewLoginUseCase(stubCredentials{"admin", "secret"}, repo, tokens, ttl, log),
		verify: NewVerifySessionUseCase(repo, tokens, log),
		logout: NewLogoutUseCase(repo, tokens, log),
		sweep:  NewSweepSessionsUseCase(repo, log),
	}
	f.login.now = biztime.Fixed(loginTime)
	f.at(loginTime)
	return f
}

func (f *fixture) at(t time.Time) {
	f.verify.now = biztime.Fixed(t)
	f.sweep.now = biztime.Fixed(t)
}

func (f *fixture) mustLogin(t *testing.T) string {
	t.Helper()
	result, err := f.login.Execute(context.Background(), LoginCommand{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	return result.Token
}

func TestLoginUseCase_Execute(t *testing.T) {
	t.Run("success stores only the hash", func(t *testing.T) {
		f := newFixture()
		result, err := f.login.Execute(context.Background(), LoginCommand{
			Username: "admin", Password: "secret", IPAddress: "1.2.3.4", UserAgent: "ua",
		})
		require.NoError(t, err)

		assert.Len(t, result.Token, 64)
		assert.Equal(t, loginTime.Add(ttl), result.ExpiresAt)
		require.Equal(t, 1, f.repo.count())

		_, stored := f.repo.sessions[result.Token]
		assert.False(t, stored, "plain token must never be a key")

		s, err := f.repo.GetByTokenHash(context.Background(), token.NewSessionTokenGenerator().Hash(result.Token))
		require.NoError(t, err)
		assert.Equal(t, "1.2.3.4", s.IPAddress)
	})

	failures := []LoginCommand{
		{Username: "admin", Password: "wrong"},
		{Username: "root", Password: "secret"},
		{Username: "", Password: ""},
	}
	for _, cmd := range failures {
		t.Run("rejects "+cmd.Username+"/"+cmd.Password, func(t *testing.T) {
			f := newFixture()
			_, err := f.login.Execute(context.Background(), cmd)
			require.Error(t, err)

			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusUnauthorized, appErr.Code)
			assert.Equal(t, errors.ErrorTypeInvalidCredentials, appErr.Type)
			assert.Zero(t, f.repo.count(), "failed login must not touch the store")
		})
	}

	t.Run("long user agent is clipped before storage", func(t *testing.T) {
		f := newFixture()
		result, err := f.login.Execute(context.Background(), LoginCommand{
			Username: "admin", Password: "secret", IPAddress: "1.2.3.4", UserAgent: strings.Repeat("x", 1000),
		})
		require.NoError(t, err)

		s, err := f.repo.GetByTokenHash(context.Background(), token.NewSessionTokenGenerator().Hash(result.Token))
		require.NoError(t, err)
		assert.Len(t, s.UserAgent, admin.MaxUserAgentLength)
	})

	t.Run("failure is logged as a security event", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewLoggerWithSlog(slog.New(slog.NewJSONHandler(&buf, nil)))
		uc := NewLoginUseCase(stubCredentials{"admin", "secret"}, newMemorySessionRepository(), token.NewSessionTokenGenerator(), ttl, log)

		_, err := uc.Execute(context.Background(), LoginCommand{Username: "admin", Password: "nope", IPAddress: "203.0.113.7"})
		require.Error(t, err)
		assert.True(t, errors.IsSecurityEvent(err))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "admin login failed", rec["msg"])
		assert.Equal(t, true, rec["security_event"])
		assert.Equal(t, "203.0.113.7", rec["ip"])
	})

	t.Run("tokens are unique per login", func(t *testing.T) {
		f := newFixture()
		assert.NotEqual(t, f.mustLogin(t), f.mustLogin(t))
		assert.Equal(t, 2, f.repo.count())
	})
}

func TestVerifySessionUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("valid until expiry", func(t *testing.T) {
		f := newFixture()
		tok := f.mustLogin(t)

		ok, err := f.verify.Execute(ctx, tok)
		require.NoError(t, err)
		assert.True(t, ok)

		f.at(loginTime.Add(ttl - time.Second))
		ok, _ = f.verify.Execute(ctx, tok)
		assert.True(t, ok)

		f.at(loginTime.Add(ttl))
		ok, err = f.verify.Execute(ctx, tok)
		require.NoError(t, err)
		assert.False(t, ok, "a session at its expiry instant is invalid")
		assert.Zero(t, f.repo.count(), "expired session is removed lazily")
	})

	t.Run("empty and unknown tokens", func(t *testing.T) {
		f := newFixture()
		ok, err := f.verify.Execute(ctx, "")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = f.verify.Execute(ctx, "not-a-token")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("failed lazy delete keeps verdict", func(t *testing.T) {
		f := newFixture()
		tok := f.mustLogin(t)
		f.repo.deleteErr = stderrors.New("locked")

		f.at(loginTime.Add(48 * time.Hour))
		ok, err := f.verify.Execute(ctx, tok)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		f := newFixture()
		f.repo.getErr = stderrors.New("db down")
		ok, err := f.verify.Execute(ctx, "abc")
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestLogoutUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	tok := f.mustLogin(t)

	removed, err := f.logout.Execute(ctx, tok)
	require.NoError(t, err)
	assert.True(t, removed)

	ok, _ := f.verify.Execute(ctx, tok)
	assert.False(t, ok)

	removed, err = f.logout.Execute(ctx, tok)
	require.NoError(t, err)
	assert.False(t, removed)

	ok, _ = f.verify.Execute(ctx, tok)
	assert.False(t, ok)

	removed, err = f.logout.Execute(ctx, "")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSweepSessionsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.mustLogin(t)
	f.mustLogin(t)

	f.at(loginTime.Add(time.Hour))
	removed, err := f.sweep.Execute(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)

	f.at(loginTime.Add(ttl))
	removed, err = f.sweep.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	assert.Zero(t, f.repo.count())
}
