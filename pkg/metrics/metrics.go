// Package metrics provides Prometheus instrumentation for flib components.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for flib components.
type Registry struct {
	// Dispatcher Metrics
	TasksInvoked          *prometheus.CounterVec
	TasksExecuted         *prometheus.CounterVec
	TasksCancelled        *prometheus.CounterVec
	TasksQueued           *prometheus.GaugeVec
	DispatcherExecutors   *prometheus.GaugeVec
	TaskExecutionDuration *prometheus.HistogramVec

	// Timer Metrics
	TimerFirings       *prometheus.CounterVec
	TimerOverruns      *prometheus.CounterVec
	TimerScheduled     *prometheus.GaugeVec
	TimerEventDuration *prometheus.HistogramVec
}

// DefaultRegistry is the default metrics registry used by flib components.
var DefaultRegistry *Registry

var (
	registriesMu sync.Mutex
	registries   = map[prometheus.Registerer]*Registry{}
)

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// ForRegisterer returns the Registry bound to reg, creating it on first
// use. A nil reg and prometheus.DefaultRegisterer both resolve to
// DefaultRegistry. Collectors are registered on a registerer exactly once,
// so any number of components may share one registerer.
func ForRegisterer(reg prometheus.Registerer) *Registry {
	if reg == nil || reg == prometheus.DefaultRegisterer {
		return DefaultRegistry
	}

	registriesMu.Lock()
	defer registriesMu.Unlock()
	if r, ok := registries[reg]; ok {
		return r
	}
	r := NewRegistry(reg)
	registries[reg] = r
	return r
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Dispatcher Metrics
		TasksInvoked: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "flib",
				Subsystem: "dispatch",
				Name:      "tasks_invoked_total",
				Help:      "Total number of tasks accepted for dispatch",
			},
			[]string{"dispatcher_name"},
		),

		TasksExecuted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "flib",
				Subsystem: "dispatch",
				Name:      "tasks_executed_total",
				Help:      "Total number of tasks executed by executors",
			},
			[]string{"dispatcher_name"},
		),

		TasksCancelled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "flib",
				Subsystem: "dispatch",
				Name:      "tasks_cancelled_total",
				Help:      "Total number of pending tasks cancelled or cleared",
			},
			[]string{"dispatcher_name"},
		),

		TasksQueued: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "flib",
				Subsystem: "dispatch",
				Name:      "queued_tasks",
				Help:      "Number of tasks currently pending dispatch",
			},
			[]string{"dispatcher_name"},
		),

		DispatcherExecutors: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "flib",
				Subsystem: "dispatch",
				Name:      "executors",
				Help:      "Current number of executor goroutines",
			},
			[]string{"dispatcher_name"},
		),

		TaskExecutionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "flib",
				Subsystem: "dispatch",
				Name:      "task_duration_seconds",
				Help:      "Time spent executing tasks",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"dispatcher_name"},
		),

		// Timer Metrics
		TimerFirings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "flib",
				Subsystem: "timer",
				Name:      "firings_total",
				Help:      "Total number of timer event firings",
			},
			[]string{"timer_name"},
		),

		TimerOverruns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "flib",
				Subsystem: "timer",
				Name:      "overruns_total",
				Help:      "Total number of fixed-rate firings whose deadline had already passed",
			},
			[]string{"timer_name"},
		),

		TimerScheduled: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "flib",
				Subsystem: "timer",
				Name:      "scheduled",
				Help:      "Whether the timer currently holds an armed schedule (0 or 1)",
			},
			[]string{"timer_name"},
		),

		TimerEventDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "flib",
				Subsystem: "timer",
				Name:      "event_duration_seconds",
				Help:      "Time spent executing timer events",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"timer_name"},
		),
	}
}
