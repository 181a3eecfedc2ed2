package dispatch

import (
	"time"

	"github.com/fr3nzy90/flib-go/pkg/metrics"
)

// instruments bundles the dispatcher's Prometheus instruments behind an
// enabled flag so the hot path stays cheap when metrics are off.
type instruments struct {
	enabled  bool
	name     string
	registry *metrics.Registry
}

func newInstruments(name string, cfg metrics.Config) instruments {
	if !cfg.Enabled {
		return instruments{}
	}

	return instruments{
		enabled:  true,
		name:     name,
		registry: metrics.ForRegisterer(cfg.Registry),
	}
}

func (m instruments) invoked() {
	if m.enabled {
		m.registry.TasksInvoked.WithLabelValues(m.name).Inc()
	}
}

func (m instruments) executed(d time.Duration) {
	if m.enabled {
		m.registry.TasksExecuted.WithLabelValues(m.name).Inc()
		m.registry.TaskExecutionDuration.WithLabelValues(m.name).Observe(d.Seconds())
	}
}

func (m instruments) cancelled(n int) {
	if m.enabled && n > 0 {
		m.registry.TasksCancelled.WithLabelValues(m.name).Add(float64(n))
	}
}

func (m instruments) queued(n int) {
	if m.enabled {
		m.registry.TasksQueued.WithLabelValues(m.name).Set(float64(n))
	}
}

func (m instruments) executorCount(n int) {
	if m.enabled {
		m.registry.DispatcherExecutors.WithLabelValues(m.name).Set(float64(n))
	}
}
