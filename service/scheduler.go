package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/layer-3/questrun/core"
	"github.com/layer-3/questrun/internal/metrics"
	"github.com/layer-3/questrun/ports"
)

// Processor handles one wallet within a cycle. *Pipeline satisfies it.
type Processor interface {
	Process(ctx context.Context, index int, signer ports.Signer) core.AccountResult
}

// Scheduler iterates the account pipeline over every configured wallet,
// strictly in list order. The shared cookie jar holds one authenticated
// identity at a time, so an account must fully finish before the next
// one starts.
type Scheduler struct {
	wallets   ports.WalletSource
	api       QuestAPI
	processor Processor
	events    ports.EventPublisher // optional
	pacer     *Pacer
	interval  time.Duration
	logger    *slog.Logger
	onSummary func(core.CycleSummary)
}

// NewScheduler creates a new cycle scheduler. events may be nil; interval
// only matters for Run.
func NewScheduler(
	wallets ports.WalletSource,
	api QuestAPI,
	processor Processor,
	events ports.EventPublisher,
	pacer *Pacer,
	interval time.Duration,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		wallets:   wallets,
		api:       api,
		processor: processor,
		events:    events,
		pacer:     pacer,
		interval:  interval,
		logger:    logger,
	}
}

// OnSummary registers a hook invoked with each completed cycle summary.
func (s *Scheduler) OnSummary(fn func(core.CycleSummary)) {
	s.onSummary = fn
}

// RunCycle processes every wallet once and returns the cycle summary.
// Only a wallet-list load failure is fatal; everything else is contained
// per account.
func (s *Scheduler) RunCycle(ctx context.Context) (core.CycleSummary, error) {
	runID := uuid.New().String()
	startedAt := time.Now()
	s.logger.Info("cycle started", "run_id", runID)

	s.api.RestoreSession(ctx)
	if err := s.api.VisitLanding(ctx); err != nil {
		s.logger.Warn("failed to visit landing page", "error", err)
	}

	signers, err := s.wallets.Load()
	if err != nil {
		return core.CycleSummary{}, fmt.Errorf("failed to load wallets: %w", err)
	}

	results := make([]core.AccountResult, 0, len(signers))
	for i, signer := range signers {
		result := s.processor.Process(ctx, i+1, signer)
		results = append(results, result)

		outcome := "failure"
		if result.Success {
			outcome = "success"
		}
		metrics.AccountsProcessed.WithLabelValues(outcome).Inc()

		if s.events != nil {
			if err := s.events.PublishAccountResult(ctx, result); err != nil {
				s.logger.Warn("failed to publish account result", "error", err)
			}
		}

		if i < len(signers)-1 {
			s.pacer.BetweenAccounts(ctx)
		}
		if ctx.Err() != nil {
			break
		}
	}

	summary := core.Summarize(runID, startedAt, results)
	s.logger.Info("cycle finished",
		"run_id", runID,
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"tasks_completed", summary.TasksCompleted,
		"tasks_already_done", summary.TasksAlreadyDone,
		"duration", summary.Duration)

	metrics.CyclesTotal.Inc()
	metrics.LastCycleTimestamp.SetToCurrentTime()
	metrics.CycleDuration.Observe(summary.Duration.Seconds())

	if s.events != nil {
		if err := s.events.PublishCycleSummary(ctx, summary); err != nil {
			s.logger.Warn("failed to publish cycle summary", "error", err)
		}
	}
	if s.onSummary != nil {
		s.onSummary(summary)
	}
	return summary, nil
}

// Run executes cycles forever, sleeping the configured interval between
// them, until the context is cancelled. A cycle error is fatal and
// propagates to the caller.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		if _, err := s.RunCycle(ctx); err != nil {
			return err
		}

		s.logger.Info("sleeping until next cycle", "interval", s.interval)
		sleep(ctx, s.interval)
		if ctx.Err() != nil {
			return nil
		}
	}
}
