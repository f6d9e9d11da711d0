package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/layer-3/questrun/core"
)

func fiveTasks() []core.Task {
	return []core.Task{
		{ID: "t1", Name: "Follow", Completed: true},
		{ID: "t2", Name: "Connect", Completed: false},
		{ID: "t3", Name: "Join", Completed: true},
		{ID: "t4", Name: "Share", Completed: false},
		{ID: "t5", Name: "Invite", Completed: false},
	}
}

func TestTaskLoopVerifiesPendingInOrder(t *testing.T) {
	var verified []string
	api := &fakeAPI{
		tasksFn: func(ctx context.Context) ([]core.Task, error) {
			return fiveTasks(), nil
		},
		verifyTaskFn: func(ctx context.Context, taskID string) (bool, error) {
			verified = append(verified, taskID)
			return taskID != "t4", nil // t4 stays unverified
		},
	}

	report := NewTaskService(api, quietPacer(), discard()).Run(context.Background())

	assert.True(t, report.Success)
	assert.Equal(t, 2, report.Completed)
	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 2, report.AlreadyCompleted)
	// Pending tasks verified exactly once each, in original relative order.
	assert.Equal(t, []string{"t2", "t4", "t5"}, verified)
}

func TestTaskLoopFetchFailure(t *testing.T) {
	api := &fakeAPI{
		tasksFn: func(ctx context.Context) ([]core.Task, error) {
			return nil, errors.New("boom")
		},
	}

	report := NewTaskService(api, quietPacer(), discard()).Run(context.Background())
	assert.Equal(t, core.TaskReport{}, report)
}

func TestTaskLoopEmptyList(t *testing.T) {
	api := &fakeAPI{
		tasksFn: func(ctx context.Context) ([]core.Task, error) {
			return []core.Task{}, nil
		},
	}

	report := NewTaskService(api, quietPacer(), discard()).Run(context.Background())
	assert.Equal(t, core.TaskReport{}, report)
}

func TestTaskLoopAllAlreadyCompleted(t *testing.T) {
	api := &fakeAPI{
		tasksFn: func(ctx context.Context) ([]core.Task, error) {
			return []core.Task{
				{ID: "t1", Completed: true},
				{ID: "t2", Completed: true},
			}, nil
		},
	}

	report := NewTaskService(api, quietPacer(), discard()).Run(context.Background())

	assert.True(t, report.Success)
	assert.Equal(t, 0, report.Completed)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.AlreadyCompleted)
	assert.False(t, has(t, api.calls, "verify-task:t1"))
	assert.False(t, has(t, api.calls, "verify-task:t2"))
}

func TestTaskLoopSurvivesPerTaskErrors(t *testing.T) {
	api := &fakeAPI{
		tasksFn: func(ctx context.Context) ([]core.Task, error) {
			return []core.Task{
				{ID: "t1"},
				{ID: "t2"},
			}, nil
		},
		verifyTaskFn: func(ctx context.Context, taskID string) (bool, error) {
			if taskID == "t1" {
				return false, errors.New("timeout")
			}
			return true, nil
		},
	}

	report := NewTaskService(api, quietPacer(), discard()).Run(context.Background())

	assert.True(t, report.Success)
	assert.Equal(t, 1, report.Completed)
	assert.True(t, has(t, api.calls, "verify-task:t2"))
}
