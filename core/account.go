package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuthState is the terminal state of one wallet's sign-in attempt
type AuthState int

const (
	AuthFailed AuthState = iota // transport or signing failure
	AuthRejected                // well-formed server rejection
	AuthAuthenticated
)

func (s AuthState) String() string {
	switch s {
	case AuthAuthenticated:
		return "authenticated"
	case AuthRejected:
		return "rejected"
	default:
		return "failed"
	}
}

// Profile is the remote account profile. Raw keeps the untouched response
// body since the server adds fields without notice.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Address  string `json:"address"`
	Raw      []byte `json:"-"`
}

// Streak is the daily-visit counter maintained by the remote service.
// Fields are pointers: a missing field means the server returned a
// partial/placeholder payload, which is distinct from a zero value.
type Streak struct {
	Current   *int    `json:"currentStreak"`
	Longest   *int    `json:"longestStreak"`
	LastVisit *string `json:"lastVisitDate"`
}

// Valid reports whether the payload carries a numeric current streak, a
// numeric longest streak and a last-visit date. Partial responses are
// invalid, not merely absent.
func (s *Streak) Valid() bool {
	return s != nil && s.Current != nil && s.Longest != nil &&
		s.LastVisit != nil && *s.LastVisit != ""
}

// Experience holds the account's experience points. XP arrives as a JSON
// number or string depending on server version; decimal accepts both.
type Experience struct {
	Exp   decimal.Decimal `json:"exp"`
	Level int             `json:"level"`
}

// Task is a remote-defined social action a user can verify for rewards.
// Read-only here except for the verify call, which may flip Completed
// server-side.
type Task struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Platform    string `json:"platform"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TaskReport summarizes one run of the task verification loop.
type TaskReport struct {
	Success          bool `json:"success"`
	Completed        int  `json:"completed"`
	Total            int  `json:"total"`
	AlreadyCompleted int  `json:"already_completed"`
}

// AccountResult is produced once per wallet per cycle.
type AccountResult struct {
	Success bool        `json:"success"`
	Address string      `json:"address"`
	Auth    AuthState   `json:"-"`
	Profile *Profile    `json:"profile,omitempty"`
	Streak  *Streak     `json:"streak,omitempty"`
	Tasks   *TaskReport `json:"tasks,omitempty"`
	Exp     *Experience `json:"exp,omitempty"`
	Err     string      `json:"error,omitempty"`
}

// CycleSummary aggregates the results of one full pass over the wallet list.
type CycleSummary struct {
	RunID            string        `json:"run_id"`
	Total            int           `json:"total"`
	Succeeded        int           `json:"succeeded"`
	Failed           int           `json:"failed"`
	TasksCompleted   int           `json:"tasks_completed"`
	TasksAlreadyDone int           `json:"tasks_already_done"`
	StartedAt        time.Time     `json:"started_at"`
	Duration         time.Duration `json:"duration"`
}

// Summarize folds per-account results into a cycle summary.
func Summarize(runID string, startedAt time.Time, results []AccountResult) CycleSummary {
	sum := CycleSummary{
		RunID:     runID,
		Total:     len(results),
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
	}
	for _, r := range results {
		if r.Success {
			sum.Succeeded++
		} else {
			sum.Failed++
		}
		if r.Tasks != nil {
			sum.TasksCompleted += r.Tasks.Completed
			sum.TasksAlreadyDone += r.Tasks.AlreadyCompleted
		}
	}
	return sum
}

// Mask shortens a key or address to a loggable prefix/suffix form.
// Key material must never reach the log sink in full.
func Mask(s string) string {
	if len(s) <= 10 {
		return "***"
	}
	return s[:6] + "..." + s[len(s)-4:]
}
