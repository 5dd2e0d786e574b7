package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/inkfolio/inkfolio/internal/domain/admin"
	"github.com/inkfolio/inkfolio/internal/shared/errors"
)

// memorySessionRepository is an in-memory SessionRepository with optional
// failure injection.
type memorySessionRepository struct {
	mu        sync.Mutex
	sessions  map[string]*admin.Session
	deleteErr error
	getErr    error
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{sessions: make(map[string]*admin.Session)}
}

func (m *memorySessionRepository) Create(_ context.Context, s *admin.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.TokenHash] = s
	return nil
}

func (m *memorySessionRepository) GetByTokenHash(_ context.Context, hash string) (*admin.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	s, ok := m.sessions[hash]
	if !ok {
		return nil, errors.NewNotFoundError("session not found")
	}
	return s, nil
}

func (m *memorySessionRepository) DeleteByTokenHash(_ context.Context, hash string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	_, ok := m.sessions[hash]
	delete(m.sessions, hash)
	return ok, nil
}

func (m *memorySessionRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for k, s := range m.sessions {
		if !now.Before(s.ExpiresAt) {
			delete(m.sessions, k)
			n++
		}
	}
	return n, nil
}

func (m *memorySessionRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

type stubCredentials struct {
	username, password string
}

func (s stubCredentials) Verify(username, password string) bool {
	return username == s.username && password == s.password
}
