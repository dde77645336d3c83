// Package limiter throttles repeated login failures per (username, ip) pair.
package limiter

import (
	"context"
	"time"
)

// Limiter tracks login attempts and temporary lockouts.
type Limiter interface {
	// Allow reports whether a login attempt is currently permitted and,
	// when blocked, how long to wait before retrying.
	Allow(ctx context.Context, username string, ipHash []byte) (bool, time.Duration, error)
	// Success resets counters after a successful login.
	Success(ctx context.Context, username string, ipHash []byte) error
	// Failure records a failed attempt; may place a temporary block.
	Failure(ctx context.Context, username string, ipHash []byte) (bool, time.Duration, error)
}
