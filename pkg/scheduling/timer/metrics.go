package timer

import (
	"time"

	"github.com/fr3nzy90/flib-go/pkg/metrics"
)

// instruments bundles the timer's Prometheus instruments behind an enabled
// flag so firing stays cheap when metrics are off.
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

func (m instruments) fired(d time.Duration) {
	if m.enabled {
		m.registry.TimerFirings.WithLabelValues(m.name).Inc()
		m.registry.TimerEventDuration.WithLabelValues(m.name).Observe(d.Seconds())
	}
}

func (m instruments) overrun() {
	if m.enabled {
		m.registry.TimerOverruns.WithLabelValues(m.name).Inc()
	}
}

func (m instruments) scheduled(armed bool) {
	if m.enabled {
		v := 0.0
		if armed {
			v = 1.0
		}
		m.registry.TimerScheduled.WithLabelValues(m.name).Set(v)
	}
}
