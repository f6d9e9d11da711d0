package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithRetryEventuallyValid(t *testing.T) {
	calls := 0
	action := func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, nil // placeholder payload
		}
		return 42, nil
	}
	valid := func(v int) bool { return v != 0 }

	result, ok := WithRetry(context.Background(), discard(), "test", RetryConfig{Attempts: 3}, action, valid)
	assert.True(t, ok)
	assert.Equal(t, 42, result)
	assert.Equal(t, 3, calls)
}

func TestWithRetryExhaustion(t *testing.T) {
	calls := 0
	action := func(ctx context.Context) (int, error) {
		calls++
		return 0, nil
	}
	valid := func(v int) bool { return v != 0 }

	result, ok := WithRetry(context.Background(), discard(), "test", RetryConfig{Attempts: 3}, action, valid)
	assert.False(t, ok)
	assert.Zero(t, result)
	assert.Equal(t, 3, calls)
}

func TestWithRetryErrorCountsAsFailedAttempt(t *testing.T) {
	calls := 0
	action := func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 99, errors.New("transient")
		}
		return 7, nil
	}
	valid := func(v int) bool { return true }

	result, ok := WithRetry(context.Background(), discard(), "test", RetryConfig{Attempts: 2}, action, valid)
	assert.True(t, ok)
	assert.Equal(t, 7, result)
	assert.Equal(t, 2, calls)
}

func TestWithRetryFirstAttemptValid(t *testing.T) {
	calls := 0
	action := func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	}

	result, ok := WithRetry(context.Background(), discard(), "test", DefaultRetryConfig, action, func(string) bool { return true })
	assert.True(t, ok)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestWithRetryStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	action := func(ctx context.Context) (int, error) {
		calls++
		cancel()
		return 0, nil
	}

	_, ok := WithRetry(ctx, discard(), "test", RetryConfig{Attempts: 5, Delay: time.Millisecond}, action, func(int) bool { return false })
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}
