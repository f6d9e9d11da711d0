package service

import (
	"context"
	"math/rand"
	"time"
)

// DelayRange is a randomized wait bound, inclusive of Min.
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// Pacing is the step→delay table for one account pipeline. Keeping the
// waits in one value makes the pacing strategy a parameter instead of
// inline sleeps, so tests run with a zero table.
type Pacing struct {
	Step       time.Duration // fixed wait between pipeline steps
	TaskBefore DelayRange    // before each task verification
	TaskAfter  DelayRange    // after each task verification
	Account    DelayRange    // between wallets within a cycle
}

// DefaultPacing mirrors the pacing the quest platform tolerates without
// tripping anti-automation heuristics.
func DefaultPacing() Pacing {
	return Pacing{
		Step:       3 * time.Second,
		TaskBefore: DelayRange{Min: 1 * time.Second, Max: 3 * time.Second},
		TaskAfter:  DelayRange{Min: 1 * time.Second, Max: 2 * time.Second},
		Account:    DelayRange{Min: 5 * time.Second, Max: 10 * time.Second},
	}
}

// Pacer executes a Pacing table with context-aware sleeps.
type Pacer struct {
	cfg Pacing
	rng *rand.Rand
}

// NewPacer creates a pacer over the given table.
func NewPacer(cfg Pacing) *Pacer {
	return &Pacer{
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Step waits the fixed inter-step delay.
func (p *Pacer) Step(ctx context.Context) {
	sleep(ctx, p.cfg.Step)
}

// BeforeTask waits the randomized pre-verification delay.
func (p *Pacer) BeforeTask(ctx context.Context) {
	sleep(ctx, p.pick(p.cfg.TaskBefore))
}

// AfterTask waits the randomized post-verification delay.
func (p *Pacer) AfterTask(ctx context.Context) {
	sleep(ctx, p.pick(p.cfg.TaskAfter))
}

// BetweenAccounts waits the randomized inter-account delay.
func (p *Pacer) BetweenAccounts(ctx context.Context) {
	sleep(ctx, p.pick(p.cfg.Account))
}

func (p *Pacer) pick(r DelayRange) time.Duration {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + time.Duration(p.rng.Int63n(int64(r.Max-r.Min)))
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
