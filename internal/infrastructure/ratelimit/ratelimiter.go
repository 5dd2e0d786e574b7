package ratelimit

import (
	"context"
	"time"
)

// Policy caps requests per key over sliding windows. A non-positive limit
// disables that window.
type Policy struct {
	PerMinute int
	PerHour   int
}

// Window is one sliding window of a policy.
type Window struct {
	Duration time.Duration
	Limit    int
}

func (p Policy) Windows() []Window {
	windows := make([]Window, 0, 2)
	if p.PerMinute > 0 {
		windows = append(windows, Window{Duration: time.Minute, Limit: p.PerMinute})
	}
	if p.PerHour > 0 {
		windows = append(windows, Window{Duration: time.Hour, Limit: p.PerHour})
	}
	return windows
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, policy Policy) (bool, error)
}
