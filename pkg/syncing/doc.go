/*
Package syncing provides synchronization primitives beyond the standard
library's sync package.

  - syncval: A generic value box guarded by a lock, with predicate-gated
    blocking waits and destruction-safe teardown.

Basic usage:

	v := syncval.New(0)

	go func() {
		v.Store(42)
		v.Broadcast()
	}()

	if v.Wait(func(n int) bool { return n == 42 }) {
		// observed 42
	}
*/
package syncing
