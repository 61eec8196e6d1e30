// Package ratelimit spaces out consecutive message sends so a posting
// cycle does not burst the channel.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// SendLimiter enforces a minimum delay between consecutive sends to the
// same channel. Different channels never block each other.
type SendLimiter struct {
	mu       sync.Mutex
	lastSend map[string]time.Time // key: channel ID
	minDelay time.Duration
}

// NewSendLimiter creates a limiter that enforces minDelay between
// consecutive sends to the same channel.
func NewSendLimiter(minDelay time.Duration) *SendLimiter {
	return &SendLimiter{
		lastSend: make(map[string]time.Time),
		minDelay: minDelay,
	}
}

// Wait blocks until enough time has passed since the last send to the
// given channel. Returns an error if the context is cancelled while
// waiting.
func (l *SendLimiter) Wait(ctx context.Context, channelID string) error {
	l.mu.Lock()
	last, ok := l.lastSend[channelID]
	now := time.Now()

	if !ok {
		// First send to this channel, no wait needed.
		l.lastSend[channelID] = now
		l.mu.Unlock()
		return nil
	}

	elapsed := now.Sub(last)
	if elapsed >= l.minDelay {
		l.lastSend[channelID] = now
		l.mu.Unlock()
		return nil
	}

	remaining := l.minDelay - elapsed
	l.mu.Unlock()

	select {
	case <-ctx.Done():
		return fmt.Errorf("send limiter wait for channel %s: %w", channelID, ctx.Err())
	case <-time.After(remaining):
	}

	l.mu.Lock()
	l.lastSend[channelID] = time.Now()
	l.mu.Unlock()

	return nil
}
