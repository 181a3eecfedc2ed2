package metrics_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fr3nzy90/flib-go/internal/testutil"
	"github.com/fr3nzy90/flib-go/pkg/metrics"
	"github.com/fr3nzy90/flib-go/pkg/scheduling/dispatch"
	"github.com/fr3nzy90/flib-go/pkg/scheduling/timer"
)

// Components built with DefaultConfig all share the collectors that were
// registered on the default registerer at package init; constructing any
// number of them must not attempt a second registration.
func TestDefaultConfigSharedByComponents(t *testing.T) {
	d1, err := dispatch.NewWithConfig(dispatch.Config{
		Enabled:   true,
		Executors: 1,
		Name:      "default-config-a",
		Metrics:   metrics.DefaultConfig(),
	})
	testutil.AssertNoError(t, err)
	defer d1.Close()

	d2, err := dispatch.NewWithConfig(dispatch.Config{
		Enabled:   true,
		Executors: 1,
		Name:      "default-config-b",
		Metrics:   metrics.DefaultConfig(),
	})
	testutil.AssertNoError(t, err)
	defer d2.Close()

	tm := timer.NewWithConfig(timer.Config{
		Name:    "default-config",
		Metrics: metrics.DefaultConfig(),
	})
	defer tm.Close()

	var executed int32
	d1.Invoke(func() { atomic.AddInt32(&executed, 1) })
	d2.Invoke(func() { atomic.AddInt32(&executed, 1) })
	testutil.WaitForInt32(t, &executed, 2, time.Second)
}

func TestCustomRegistrySharedByComponents(t *testing.T) {
	registry := prometheus.NewRegistry()
	cfg := metrics.Config{Enabled: true, Registry: registry}

	d, err := dispatch.NewWithConfig(dispatch.Config{
		Enabled:   true,
		Executors: 1,
		Name:      "shared-registry",
		Metrics:   cfg,
	})
	testutil.AssertNoError(t, err)
	defer d.Close()

	tm := timer.NewWithConfig(timer.Config{
		Name:    "shared-registry",
		Metrics: cfg,
	})
	defer tm.Close()

	var executed int32
	d.Invoke(func() { atomic.AddInt32(&executed, 1) })
	testutil.WaitForInt32(t, &executed, 1, time.Second)

	var fired int32
	tm.Schedule(func() { atomic.AddInt32(&fired, 1) }, 0)
	testutil.WaitForInt32(t, &fired, 1, time.Second)

	// Both components report through the one shared registry.
	counters := func() map[string]float64 {
		families, err := registry.Gather()
		testutil.AssertNoError(t, err)

		found := map[string]float64{}
		for _, mf := range families {
			for _, m := range mf.GetMetric() {
				if m.GetCounter() != nil {
					found[mf.GetName()] += m.GetCounter().GetValue()
				}
			}
		}
		return found
	}

	testutil.Eventually(t, func() bool {
		found := counters()
		return found["flib_dispatch_tasks_executed_total"] == 1 &&
			found["flib_timer_firings_total"] == 1
	}, time.Second, 2*time.Millisecond)
}
