package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layer-3/questrun/core"
	"github.com/layer-3/questrun/transport/quest"
)

func newTestPipeline(api *fakeAPI) *Pipeline {
	logger := discard()
	pacer := quietPacer()
	auth := NewAuthService(api, testSpec(), logger)
	tasks := NewTaskService(api, pacer, logger)
	return NewPipeline(auth, api, tasks, RetryConfig{Attempts: 3}, pacer, logger)
}

func TestPipelineSuccess(t *testing.T) {
	api := &fakeAPI{
		tasksFn: func(ctx context.Context) ([]core.Task, error) {
			return fiveTasks(), nil
		},
		verifyTaskFn: func(ctx context.Context, taskID string) (bool, error) {
			return true, nil
		},
	}

	result := newTestPipeline(api).Process(context.Background(), 1, &fakeSigner{address: "0xabc"})

	assert.True(t, result.Success)
	assert.Equal(t, "0xabc", result.Address)
	assert.Equal(t, core.AuthAuthenticated, result.Auth)
	require.NotNil(t, result.Profile)
	require.NotNil(t, result.Streak)
	require.NotNil(t, result.Tasks)
	require.NotNil(t, result.Exp)
	assert.Equal(t, 3, result.Tasks.Completed)
}

func TestPipelineRejectionSkipsPostAuthSteps(t *testing.T) {
	api := &fakeAPI{
		verifyFn: func(ctx context.Context, message, signature string) (*quest.VerifyResult, error) {
			return &quest.VerifyResult{Status: 500, Error: "nope"}, nil
		},
	}

	result := newTestPipeline(api).Process(context.Background(), 1, &fakeSigner{address: "0xabc"})

	assert.False(t, result.Success)
	assert.Equal(t, "0xabc", result.Address)
	assert.Equal(t, core.AuthRejected, result.Auth)
	assert.False(t, has(t, api.calls, "profile"))
	assert.False(t, has(t, api.calls, "streak"))
	assert.False(t, has(t, api.calls, "tasks"))
	assert.False(t, has(t, api.calls, "exp"))
}

func TestPipelineAuthTransportFailure(t *testing.T) {
	api := &fakeAPI{
		nonceFn: func(ctx context.Context, address string) (string, error) {
			return "", errors.New("dial tcp: timeout")
		},
	}

	result := newTestPipeline(api).Process(context.Background(), 1, &fakeSigner{address: "0xabc"})

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Err)
	assert.False(t, has(t, api.calls, "profile"))
}

func TestPipelineProfileFailureIsBestEffort(t *testing.T) {
	api := &fakeAPI{
		profileFn: func(ctx context.Context) (*core.Profile, error) {
			return nil, errors.New("profile unavailable")
		},
		tasksFn: func(ctx context.Context) ([]core.Task, error) {
			return nil, errors.New("no tasks")
		},
	}

	result := newTestPipeline(api).Process(context.Background(), 1, &fakeSigner{address: "0xabc"})

	// Auth succeeded; the profile failure must not flip the result.
	assert.True(t, result.Success)
	assert.Nil(t, result.Profile)
	assert.True(t, has(t, api.calls, "streak"))
	assert.True(t, has(t, api.calls, "exp"))
}

func TestPipelineStreakRetriesThenGivesUp(t *testing.T) {
	streakCalls := 0
	api := &fakeAPI{
		streakFn: func(ctx context.Context) (*core.Streak, error) {
			streakCalls++
			return &core.Streak{}, nil // placeholder payload, never valid
		},
	}

	result := newTestPipeline(api).Process(context.Background(), 1, &fakeSigner{address: "0xabc"})

	assert.True(t, result.Success)
	assert.Nil(t, result.Streak)
	assert.Equal(t, 3, streakCalls)
}

func TestPipelineContainsPanics(t *testing.T) {
	api := &fakeAPI{
		profileFn: func(ctx context.Context) (*core.Profile, error) {
			panic("unexpected response shape")
		},
	}

	result := newTestPipeline(api).Process(context.Background(), 7, &fakeSigner{address: "0xabc"})

	assert.False(t, result.Success)
	assert.Equal(t, "0xabc", result.Address)
	assert.Contains(t, result.Err, "unexpected response shape")
}
