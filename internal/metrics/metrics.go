package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CyclesTotal counts completed scheduler cycles
	CyclesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "questrun_cycles_total",
			Help: "Total number of completed processing cycles",
		},
	)

	// AccountsProcessed counts processed wallets by outcome
	AccountsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "questrun_accounts_processed_total",
			Help: "Total number of processed accounts",
		},
		[]string{"outcome"},
	)

	// AuthAttempts counts sign-in attempts by terminal state
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "questrun_auth_attempts_total",
			Help: "Total number of sign-in attempts",
		},
		[]string{"state"},
	)

	// TasksVerified counts task verification calls by result
	TasksVerified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "questrun_tasks_verified_total",
			Help: "Total number of social task verification calls",
		},
		[]string{"result"},
	)

	// LastCycleTimestamp tracks when the last cycle finished
	LastCycleTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "questrun_last_cycle_timestamp_seconds",
			Help: "Unix timestamp of the last completed cycle",
		},
	)

	// CycleDuration tracks how long cycles take
	CycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "questrun_cycle_duration_seconds",
			Help:    "Duration of processing cycles in seconds",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)
)
