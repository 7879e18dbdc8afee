// Package backoff implements exponential backoff for connection retries.
package backoff

import (
	"context"
	"time"
)

// Config holds the backoff parameters. Zero values fall back to defaults.
type Config struct {
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Multiplier is the factor applied to the delay after each retry.
	Multiplier float64
}

// DefaultConfig mirrors the delays used for reconnecting to microgrid endpoints.
var DefaultConfig = Config{
	InitialDelay: 500 * time.Millisecond,
	MaxDelay:     10 * time.Second,
	Multiplier:   2.0,
}

// Backoff tracks the current delay of one retry sequence. It is not safe for
// concurrent use; each retry loop owns its own Backoff.
type Backoff struct {
	config  Config
	current time.Duration
	attempt int
}

// New creates a Backoff from the given config, applying defaults for zero fields.
func New(config Config) *Backoff {
	if config.InitialDelay <= 0 {
		config.InitialDelay = DefaultConfig.InitialDelay
	}
	if config.MaxDelay <= 0 {
		config.MaxDelay = DefaultConfig.MaxDelay
	}
	if config.Multiplier <= 1 {
		config.Multiplier = DefaultConfig.Multiplier
	}
	return &Backoff{
		config:  config,
		current: config.InitialDelay,
	}
}

// Wait sleeps for the current delay, respecting context cancellation, then
// grows the delay for the next attempt. Returns ctx.Err() if the context is
// done before the delay elapses.
func (b *Backoff) Wait(ctx context.Context) error {
	timer := time.NewTimer(b.current)
	defer timer.Stop()

	select {
	case <-timer.C:
		b.attempt++
		b.current = time.Duration(float64(b.current) * b.config.Multiplier)
		if b.current > b.config.MaxDelay {
			b.current = b.config.MaxDelay
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reset restores the initial delay, starting a new retry sequence.
func (b *Backoff) Reset() {
	b.current = b.config.InitialDelay
	b.attempt = 0
}

// CurrentDelay returns the delay the next Wait call will sleep for.
func (b *Backoff) CurrentDelay() time.Duration {
	return b.current
}

// Attempt returns how many waits have completed since the last Reset.
func (b *Backoff) Attempt() int {
	return b.attempt
}
