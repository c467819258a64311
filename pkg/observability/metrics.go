package observability

import (
	"context"

	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors for walks and solves.
type Metrics struct {
	Steps     *prometheus.CounterVec
	Blocked   *prometheus.CounterVec
	Crossings *prometheus.CounterVec
	Turns     *prometheus.CounterVec
	Solves    *prometheus.CounterVec
	Duration  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on the global handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cubewalk_steps_total",
			Help: "Tiles advanced, by mode.",
		}, []string{"mode"}),
		Blocked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cubewalk_blocked_total",
			Help: "Runs cut short by a wall, by mode.",
		}, []string{"mode"}),
		Crossings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cubewalk_seam_crossings_total",
			Help: "Face boundaries crossed, by mode and frame rotation.",
		}, []string{"mode", "rotation"}),
		Turns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cubewalk_turns_total",
			Help: "Turns applied, by direction.",
		}, []string{"mode", "turn"}),
		Solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cubewalk_solves_total",
			Help: "Solve requests, by mode and outcome.",
		}, []string{"mode", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cubewalk_solve_duration_seconds",
			Help:    "Time spent solving a puzzle.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"mode"}),
	}
	reg.MustRegister(m.Steps, m.Blocked, m.Crossings, m.Turns, m.Solves, m.Duration)
	return m
}

// Hooks returns lifecycle hooks that update the walk counters.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(_ context.Context, e *domain.MoveEvent) {
			m.Steps.WithLabelValues(string(e.Mode)).Inc()
		},
		OnBlocked: func(_ context.Context, e *domain.MoveEvent) {
			m.Blocked.WithLabelValues(string(e.Mode)).Inc()
		},
		OnCross: func(_ context.Context, e *domain.MoveEvent) {
			m.Crossings.WithLabelValues(string(e.Mode), e.Seam.Rotation().String()).Inc()
		},
		OnTurn: func(_ context.Context, e *domain.TurnEvent) {
			m.Turns.WithLabelValues(string(e.Mode), e.Turn.String()).Inc()
		},
	}
}

// ObserveSolve records one solve call. A nil err counts as "ok".
func (m *Metrics) ObserveSolve(mode domain.Mode, seconds float64, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Solves.WithLabelValues(string(mode), outcome).Inc()
	if err == nil {
		m.Duration.WithLabelValues(string(mode)).Observe(seconds)
	}
}
