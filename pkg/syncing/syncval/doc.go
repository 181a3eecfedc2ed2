/*
Package syncval provides a generic synchronized value box with
predicate-gated blocking waits.

A Value holds one value of any type behind a lock. Readers and writers use
Load, Store and Swap; consumers that need to block until the value reaches
some condition use Wait, WaitFor or WaitUntil with a predicate that is
re-evaluated on every wakeup:

	v := syncval.New(0)

	// Producer
	v.Store(42)
	v.Broadcast()

	// Consumer
	if v.Wait(func(n int) bool { return n >= 42 }) {
		// predicate held when we woke
	}

Notification is explicit: Store and Swap never wake waiters on their own.
Signal wakes one waiter, Broadcast wakes all of them; a woken waiter whose
predicate still fails simply goes back to sleep.

Timed waits return false when the deadline passes before the predicate
holds. Close also unblocks every waiter with a false return, then waits
for all of them to leave before returning, which makes teardown safe even
with waiters in flight.
*/
package syncval
