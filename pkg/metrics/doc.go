// Package metrics provides Prometheus instrumentation for flib components.
//
// The metrics package provides automatic instrumentation for:
//   - Dispatchers (invoked, executed and cancelled tasks, queue depth,
//     executor count, task duration)
//   - Timers (firings, fixed-rate overruns, armed state, event duration)
//
// # Quick Start
//
// Enable metrics by passing a metrics.Config to the component constructor:
//
//	d, err := dispatch.NewWithConfig(dispatch.Config{
//		Executors: 4,
//		Name:      "ingest",
//		Metrics:   metrics.DefaultConfig(),
//	})
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
// # Available Metrics
//
// ## Dispatcher Metrics
//
//   - flib_dispatch_tasks_invoked_total: Total number of tasks accepted for dispatch
//   - flib_dispatch_tasks_executed_total: Total number of tasks executed
//   - flib_dispatch_tasks_cancelled_total: Total number of pending tasks cancelled or cleared
//   - flib_dispatch_queued_tasks: Number of tasks currently pending dispatch
//   - flib_dispatch_executors: Current number of executor goroutines
//   - flib_dispatch_task_duration_seconds: Time spent executing tasks
//
// ## Timer Metrics
//
//   - flib_timer_firings_total: Total number of timer event firings
//   - flib_timer_overruns_total: Fixed-rate firings whose deadline had already passed
//   - flib_timer_scheduled: Whether the timer currently holds an armed schedule
//   - flib_timer_event_duration_seconds: Time spent executing timer events
//
// # Labels
//
// All metrics carry the user-provided instance name (dispatcher_name or
// timer_name) so multiple instances can be filtered and aggregated.
//
// # Performance
//
// Metrics collection is designed for minimal overhead: metrics are updated
// only when operations occur, there are no background goroutines or timers,
// and all updates are conditional on the enabled state.
package metrics
