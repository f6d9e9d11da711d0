package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/layer-3/questrun/core"
	"github.com/layer-3/questrun/ports"
)

// Pipeline orchestrates one wallet through the full account sequence:
// sign-in, then the post-auth actions, each separated by the fixed
// inter-step delay.
type Pipeline struct {
	auth   *AuthService
	api    QuestAPI
	tasks  *TaskService
	retry  RetryConfig
	pacer  *Pacer
	logger *slog.Logger
}

// NewPipeline creates a new account pipeline
func NewPipeline(auth *AuthService, api QuestAPI, tasks *TaskService, retry RetryConfig, pacer *Pacer, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		auth:   auth,
		api:    api,
		tasks:  tasks,
		retry:  retry,
		pacer:  pacer,
		logger: logger,
	}
}

// Process runs the full sequence for one wallet and always returns a
// well-formed result: panics anywhere in the sequence are contained here
// so one account can never take down the batch.
func (p *Pipeline) Process(ctx context.Context, index int, signer ports.Signer) (result core.AccountResult) {
	address := signer.Address()
	result = core.AccountResult{Address: address}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("account processing panicked",
				"account", index,
				"address", core.Mask(address),
				"panic", r)
			result.Success = false
			result.Err = fmt.Sprintf("panic: %v", r)
		}
	}()

	p.logger.Info("processing account",
		"account", index,
		"address", core.Mask(address))

	outcome, err := p.auth.Authenticate(ctx, signer)
	result.Auth = outcome.State
	if err != nil {
		p.logger.Error("authentication failed",
			"account", index,
			"address", core.Mask(address),
			"error", err)
		result.Err = err.Error()
		return result
	}
	if outcome.State != core.AuthAuthenticated {
		// Rejection is a normal outcome; skip every post-auth step.
		result.Err = outcome.Reason
		return result
	}

	p.pacer.Step(ctx)

	if profile, err := p.api.Profile(ctx); err != nil {
		p.logger.Warn("failed to fetch profile", "account", index, "error", err)
	} else {
		result.Profile = profile
		p.logger.Info("profile fetched", "account", index, "username", profile.Username)
	}

	p.pacer.Step(ctx)

	streak, ok := WithRetry(ctx, p.logger, "streak update", p.retry,
		p.api.UpdateStreak,
		func(s *core.Streak) bool { return s.Valid() },
	)
	if ok {
		result.Streak = streak
		p.logger.Info("streak updated",
			"account", index,
			"current", *streak.Current,
			"longest", *streak.Longest)
	}

	p.pacer.Step(ctx)

	report := p.tasks.Run(ctx)
	result.Tasks = &report

	p.pacer.Step(ctx)

	if exp, err := p.api.Experience(ctx); err != nil {
		p.logger.Warn("failed to fetch experience", "account", index, "error", err)
	} else {
		result.Exp = exp
		p.logger.Info("experience fetched",
			"account", index,
			"exp", exp.Exp.String(),
			"level", exp.Level)
	}

	result.Success = true
	return result
}
