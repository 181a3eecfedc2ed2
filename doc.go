/*
Package flib provides a small set of in-process concurrency primitives
for building concurrent Go applications.

Scheduling (pkg/scheduling):
  - dispatch: prioritized multi-executor task dispatching with
    cancellable invocation handles
  - timer: single-slot delayed and periodic event scheduling with
    fixed-delay, fixed-rate and cron disciplines

Synchronization (pkg/syncing):
  - syncval: a generic value box with predicate-gated blocking waits

Example usage:

	import (
		"github.com/fr3nzy90/flib-go/pkg/scheduling/dispatch"
		"github.com/fr3nzy90/flib-go/pkg/scheduling/timer"
	)

	d, _ := dispatch.New(4) // 4 executors
	defer d.Close()

	h := d.Invoke(func() { doWork() })
	if !h.Expired() {
		h.Cancel() // best effort, pending work only
	}

	t := timer.New()
	defer t.Close()
	t.ScheduleRepeating(poll, 0, time.Second, timer.FixedRate)
*/
package flib
