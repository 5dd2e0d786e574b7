package admin

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// MaxUserAgentLength matches the user_agent column width, in characters.
const MaxUserAgentLength = 512

// Session is a server side admin login. Only the hash of the bearer token is
// kept; the plain token exists in the client's cookie alone.
type Session struct {
	TokenHash string
	IPAddress string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func NewSession(tokenHash string, ttl time.Duration, ipAddress, userAgent string, now time.Time) (*Session, error) {
	if tokenHash == "" {
		return nil, fmt.Errorf("token hash is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}

	return &Session{
		TokenHash: tokenHash,
		IPAddress: ipAddress,
		UserAgent: clip(userAgent, MaxUserAgentLength),
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}, nil
}

func clip(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	return string([]rune(s)[:maxRunes])
}

// IsValidAt holds iff now < expires_at. A session at exactly its expiry
// instant is already invalid.
func (s *Session) IsValidAt(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
