package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Example_basicUsage demonstrates basic metrics configuration.
func Example_basicUsage() {
	// Create a separate registry for this test
	testRegistry := prometheus.NewRegistry()
	registry := NewRegistry(testRegistry)

	// Example of accessing metrics
	registry.TasksInvoked.WithLabelValues("ingest").Add(10)
	registry.TasksExecuted.WithLabelValues("ingest").Add(8)
	registry.TasksCancelled.WithLabelValues("ingest").Add(2)
	registry.TimerFirings.WithLabelValues("heartbeat").Inc()

	fmt.Println("Metrics updated successfully")

	// Output:
	// Metrics updated successfully
}

// Example_customRegistry demonstrates using a custom Prometheus registry.
func Example_customRegistry() {
	customRegistry := prometheus.NewRegistry()

	config := Config{
		Enabled:  true,
		Registry: customRegistry,
	}

	registry := NewRegistry(config.Registry)
	registry.TasksQueued.WithLabelValues("batch").Set(3)

	fmt.Println("Custom registry in use")

	// Output:
	// Custom registry in use
}
