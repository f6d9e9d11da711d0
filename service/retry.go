package service

import (
	"context"
	"log/slog"
	"time"
)

// RetryConfig bounds the retry policy for flaky endpoints. The delay is
// fixed, not exponential: the endpoints this guards fail with placeholder
// payloads rather than load shedding, so backing off buys nothing.
type RetryConfig struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetryConfig provides the streak-update defaults.
var DefaultRetryConfig = RetryConfig{
	Attempts: 3,
	Delay:    2 * time.Second,
}

// WithRetry invokes action until it returns a result that both carries no
// error and satisfies valid, up to cfg.Attempts times with a fixed delay
// between attempts. Exhaustion returns the zero value and false; the
// failure is logged, never raised, since the guarded endpoints are
// best-effort.
func WithRetry[T any](
	ctx context.Context,
	logger *slog.Logger,
	name string,
	cfg RetryConfig,
	action func(context.Context) (T, error),
	valid func(T) bool,
) (T, bool) {
	var zero T
	if cfg.Attempts <= 0 {
		cfg.Attempts = 1
	}

	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		result, err := action(ctx)
		if err == nil && valid(result) {
			return result, true
		}

		if err != nil {
			logger.Warn("attempt failed",
				"action", name,
				"attempt", attempt,
				"max_attempts", cfg.Attempts,
				"error", err)
		} else {
			logger.Warn("attempt returned invalid payload",
				"action", name,
				"attempt", attempt,
				"max_attempts", cfg.Attempts)
		}

		if attempt < cfg.Attempts {
			sleep(ctx, cfg.Delay)
			if ctx.Err() != nil {
				break
			}
		}
	}

	logger.Warn("retries exhausted", "action", name, "attempts", cfg.Attempts)
	return zero, false
}
