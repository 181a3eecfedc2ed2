/*
Package timer provides a single-slot delayed and periodic event scheduler.

A Timer holds at most one scheduled event; scheduling again atomically
replaces the previous schedule. A single background runner performs all
firings, so at most one execution of the event is in flight at any time.

Basic usage:

	t := timer.New()
	defer t.Close()

	// Fire once after two seconds.
	t.Schedule(func() { flush() }, 2*time.Second)

	// Fire every second, measured from completion to start.
	t.ScheduleRepeating(poll, 0, time.Second, timer.FixedDelay)

	// Fire every second on the second, catching up after overruns.
	t.ScheduleRepeating(tick, 0, time.Second, timer.FixedRate)

	// Fire on a cron schedule (six fields, seconds first).
	if err := t.ScheduleCron(report, "0 0 * * * *"); err != nil {
		log.Fatal(err)
	}

Periodic disciplines:

FixedDelay computes the next fire time from when the previous execution
completed, so the gap between executions never shrinks below the period.
FixedRate computes it from the previous scheduled fire time, so a slow
execution is followed by an immediate catch-up firing and the long-run
cadence stays at one firing per period.

Event-driven reconfiguration:

The event executes with the timer's lock released, so it may call Clear,
Schedule or Reschedule on its own timer; a self-rescheduling event
effectively chooses its own next cadence.
*/
package timer
