package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/layer-3/questrun/core"
	"github.com/layer-3/questrun/transport/quest"
)

// fakeAPI implements QuestAPI with overridable hooks and records the
// calls it receives.
type fakeAPI struct {
	calls []string

	restoreFn    func(ctx context.Context) bool
	landingFn    func(ctx context.Context) error
	nonceFn      func(ctx context.Context, address string) (string, error)
	verifyFn     func(ctx context.Context, message, signature string) (*quest.VerifyResult, error)
	profileFn    func(ctx context.Context) (*core.Profile, error)
	streakFn     func(ctx context.Context) (*core.Streak, error)
	expFn        func(ctx context.Context) (*core.Experience, error)
	tasksFn      func(ctx context.Context) ([]core.Task, error)
	verifyTaskFn func(ctx context.Context, taskID string) (bool, error)
}

func (f *fakeAPI) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) RestoreSession(ctx context.Context) bool {
	f.record("restore")
	if f.restoreFn != nil {
		return f.restoreFn(ctx)
	}
	return false
}

func (f *fakeAPI) VisitLanding(ctx context.Context) error {
	f.record("landing")
	if f.landingFn != nil {
		return f.landingFn(ctx)
	}
	return nil
}

func (f *fakeAPI) FetchNonce(ctx context.Context, address string) (string, error) {
	f.record("nonce")
	if f.nonceFn != nil {
		return f.nonceFn(ctx, address)
	}
	return "test-nonce", nil
}

func (f *fakeAPI) Verify(ctx context.Context, message, signature string) (*quest.VerifyResult, error) {
	f.record("verify")
	if f.verifyFn != nil {
		return f.verifyFn(ctx, message, signature)
	}
	return &quest.VerifyResult{Status: 200}, nil
}

func (f *fakeAPI) Profile(ctx context.Context) (*core.Profile, error) {
	f.record("profile")
	if f.profileFn != nil {
		return f.profileFn(ctx)
	}
	return &core.Profile{ID: "u1", Username: "tester"}, nil
}

func (f *fakeAPI) UpdateStreak(ctx context.Context) (*core.Streak, error) {
	f.record("streak")
	if f.streakFn != nil {
		return f.streakFn(ctx)
	}
	return validStreak(), nil
}

func (f *fakeAPI) Experience(ctx context.Context) (*core.Experience, error) {
	f.record("exp")
	if f.expFn != nil {
		return f.expFn(ctx)
	}
	return &core.Experience{Level: 1}, nil
}

func (f *fakeAPI) SocialTasks(ctx context.Context) ([]core.Task, error) {
	f.record("tasks")
	if f.tasksFn != nil {
		return f.tasksFn(ctx)
	}
	return nil, errors.New("no tasks configured")
}

func (f *fakeAPI) VerifyTask(ctx context.Context, taskID string) (bool, error) {
	f.record("verify-task:" + taskID)
	if f.verifyTaskFn != nil {
		return f.verifyTaskFn(ctx, taskID)
	}
	return false, nil
}

// fakeSigner avoids real key material in orchestration tests.
type fakeSigner struct {
	address string
	signErr error
}

func (s *fakeSigner) Address() string {
	return s.address
}

func (s *fakeSigner) SignText(message string) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	return "0xsigned", nil
}

func validStreak() *core.Streak {
	current, longest := 3, 7
	visit := "2026-08-25"
	return &core.Streak{Current: &current, Longest: &longest, LastVisit: &visit}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func quietPacer() *Pacer {
	return NewPacer(Pacing{})
}

func has(t *testing.T, calls []string, call string) bool {
	t.Helper()
	for _, c := range calls {
		if c == call {
			return true
		}
	}
	return false
}
