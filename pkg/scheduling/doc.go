/*
Package scheduling provides task scheduling and execution primitives for Go applications.

This package offers components for dispatching and timing units of work:

  - dispatch: Prioritized multi-executor task dispatching with cancellable handles
  - timer: Single-slot delayed, periodic and cron-based event scheduling

Dispatcher:

The dispatcher executes submitted tasks on a fixed pool of executors,
highest priority first and FIFO within a priority:

	d, err := dispatch.New(4) // 4 executors
	if err != nil {
		log.Fatal(err)
	}
	defer d.Close()

	h := d.Invoke(func() {
		// Do work
	})
	d.InvokePriority(urgent, 10)

	if !h.Expired() {
		h.Cancel()
	}

Timer:

The timer fires a single event once or periodically:

	t := timer.New()
	defer t.Close()

	// One-shot
	t.Schedule(task, time.Minute)

	// Recurring, constant gap between executions
	t.ScheduleRepeating(task, 0, time.Hour, timer.FixedDelay)

	// Cron-style scheduling (six fields, seconds first)
	t.ScheduleCron(task, "0 0 9 * * MON-FRI") // Weekdays at 9 AM

All scheduling components are thread-safe, and tasks/events always execute
with internal locks released, so they may call back into their own owner.
*/
package scheduling
