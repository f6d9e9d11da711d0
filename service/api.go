package service

import (
	"context"

	"github.com/layer-3/questrun/core"
	"github.com/layer-3/questrun/transport/quest"
)

// QuestAPI is the slice of the quest client the services consume.
// *quest.Client satisfies it; tests substitute fakes.
type QuestAPI interface {
	RestoreSession(ctx context.Context) bool
	VisitLanding(ctx context.Context) error
	FetchNonce(ctx context.Context, address string) (string, error)
	Verify(ctx context.Context, message, signature string) (*quest.VerifyResult, error)
	Profile(ctx context.Context) (*core.Profile, error)
	UpdateStreak(ctx context.Context) (*core.Streak, error)
	Experience(ctx context.Context) (*core.Experience, error)
	SocialTasks(ctx context.Context) ([]core.Task, error)
	VerifyTask(ctx context.Context, taskID string) (bool, error)
}
