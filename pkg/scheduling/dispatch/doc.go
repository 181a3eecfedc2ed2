/*
Package dispatch provides a prioritized multi-executor task dispatcher.

A Dispatcher owns a priority-ordered queue of pending tasks and a fixed
pool of executor goroutines that pull and run them. Invoking returns a
non-owning Handle that can be used to check whether the task is still
pending and to cancel it while it is.

Basic usage:

	d, err := dispatch.New(4) // 4 executors, enabled
	if err != nil {
		log.Fatal(err)
	}
	defer d.Close()

	h := d.Invoke(func() {
		// Do work
	})

	// Urgent work jumps ahead of everything at lower priority.
	d.InvokePriority(urgent, 10)

	if !h.Expired() {
		h.Cancel() // best effort, pending tasks only
	}

Ordering:

Tasks of equal priority execute in submission order (FIFO). A task with a
higher priority is dispatched before any pending task of strictly lower
priority, but never preempts a task that is already running.

Lifecycle:

A disabled dispatcher keeps accepting and queueing tasks but does not
dispatch them; Enable resumes dispatch of whatever is queued, in order.
The executor count can only be changed while the dispatcher is disabled:

	d.Disable()
	if err := d.SetExecutors(8); err != nil {
		log.Fatal(err)
	}
	d.Enable()

Failure semantics:

A panic escaping a task is not recovered. A crashing task is treated as a
fatal programming error and takes the process down instead of being
silently swallowed by the dispatcher.

Self-invocation:

The internal lock is never held while a task executes, so a running task
may freely invoke, cancel on, or clear its own dispatcher.
*/
package dispatch
