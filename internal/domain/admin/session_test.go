package admin

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	s, err := NewSession("abc", 24*time.Hour, "127.0.0.1", "curl/8", now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour), s.ExpiresAt)
	assert.Equal(t, now, s.CreatedAt)

	_, err = NewSession("", time.Hour, "", "", now)
	assert.Error(t, err)
	_, err = NewSession("abc", 0, "", "", now)
	assert.Error(t, err)
}

func TestNewSession_ClipsUserAgent(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	s, err := NewSession("abc", time.Hour, "127.0.0.1", strings.Repeat("a", 1000), now)
	require.NoError(t, err)
	assert.Len(t, s.UserAgent, MaxUserAgentLength)

	s, err = NewSession("abc", time.Hour, "127.0.0.1", strings.Repeat("é", 600), now)
	require.NoError(t, err)
	assert.Equal(t, MaxUserAgentLength, utf8.RuneCountInString(s.UserAgent))
	assert.True(t, utf8.ValidString(s.UserAgent))
}

func TestSession_IsValidAt(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s, err := NewSession("abc", time.Hour, "", "", now)
	require.NoError(t, err)

	assert.True(t, s.IsValidAt(now))
	assert.True(t, s.IsValidAt(now.Add(59*time.Minute)))
	assert.False(t, s.IsValidAt(now.Add(time.Hour)), "expiry instant is already invalid")
	assert.False(t, s.IsValidAt(now.Add(25*time.Hour)))
}
