// Package metrics provides Prometheus metrics for IdeaForge: evaluation
// passes, unlocks per scope, and history size.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Progression ────────────────────────────────────────────────────────────

// EvaluationPasses counts full re-evaluation passes.
var EvaluationPasses = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "forge",
	Name:      "evaluation_passes_total",
	Help:      "Total full criteria re-evaluation passes.",
})

// EvaluationDuration tracks how long one full pass takes.
var EvaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "forge",
	Name:      "evaluation_duration_seconds",
	Help:      "Duration of one full re-evaluation pass.",
	Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
})

// Unlocks counts criteria unlocked, labeled by scope.
var Unlocks = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "forge",
	Name:      "unlocks_total",
	Help:      "Total criteria unlocked.",
}, []string{"scope"})

// ─── History ────────────────────────────────────────────────────────────────

// WorkCompleted counts completed-work records created.
var WorkCompleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "forge",
	Name:      "work_completed_total",
	Help:      "Total completed-work records created.",
})

// WorkUndone counts completed-work records removed by undo.
var WorkUndone = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "forge",
	Name:      "work_undone_total",
	Help:      "Total completed-work records removed.",
})

// HistorySize tracks the current number of history records.
var HistorySize = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "forge",
	Name:      "history_size",
	Help:      "Current number of completed-work records.",
})
