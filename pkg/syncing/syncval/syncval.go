package syncval

import (
	"sync"
	"time"
)

// Value is a generic value box guarded by a lock, supporting plain
// load/store/exchange and predicate-gated blocking waits with explicit
// notification.
//
// Waits re-evaluate their predicate on every wakeup, so they are immune to
// spurious or stale notifications. Close unblocks every waiter and then
// waits for all of them to leave before returning, so a waiter can never
// observe the box mid-teardown.
type Value[T any] struct {
	mu      sync.Mutex
	val     T
	waiters []chan struct{} // one channel per blocked waiter, FIFO
	live    int             // waiters currently inside a Wait call
	closing bool
	idle    chan struct{} // closed when closing and live reaches zero
	idleCut bool
}

// New creates a Value holding initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{
		val:  initial,
		idle: make(chan struct{}),
	}
}

// Load returns the current value.
func (v *Value[T]) Load() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.val
}

// Store replaces the current value. It does not notify waiters; call
// Signal or Broadcast explicitly to wake them.
func (v *Value[T]) Store(val T) {
	v.mu.Lock()
	v.val = val
	v.mu.Unlock()
}

// Swap replaces the current value and returns the previous one. Like
// Store, it does not notify waiters.
func (v *Value[T]) Swap(val T) T {
	v.mu.Lock()
	old := v.val
	v.val = val
	v.mu.Unlock()
	return old
}

// Signal wakes one blocked waiter for re-evaluation of its predicate.
func (v *Value[T]) Signal() {
	v.mu.Lock()
	if len(v.waiters) > 0 {
		close(v.waiters[0])
		v.waiters = v.waiters[1:]
	}
	v.mu.Unlock()
}

// Broadcast wakes all blocked waiters for re-evaluation of their predicates.
func (v *Value[T]) Broadcast() {
	v.mu.Lock()
	v.broadcastLocked()
	v.mu.Unlock()
}

// Wait blocks until pred holds for the current value, returning true, or
// until the box is closing, returning false.
func (v *Value[T]) Wait(pred func(T) bool) bool {
	return v.wait(pred, nil)
}

// WaitFor is Wait with a timeout measured on the monotonic clock. It
// returns false if the timeout elapses before the predicate holds.
func (v *Value[T]) WaitFor(d time.Duration, pred func(T) bool) bool {
	tm := time.NewTimer(d)
	defer tm.Stop()
	return v.wait(pred, tm.C)
}

// WaitUntil is Wait with an absolute deadline. It returns false if the
// deadline passes before the predicate holds.
func (v *Value[T]) WaitUntil(deadline time.Time, pred func(T) bool) bool {
	return v.WaitFor(time.Until(deadline), pred)
}

// Close marks the box as closing, wakes all waiters, and blocks until
// every waiter has left. Idempotent; concurrent and repeated calls all
// wait for the teardown to finish. Waits entered after Close begins
// return false immediately.
func (v *Value[T]) Close() {
	v.mu.Lock()
	if !v.closing {
		v.closing = true
		v.broadcastLocked()
	}
	if v.live == 0 {
		v.cutIdleLocked()
	}
	v.mu.Unlock()

	<-v.idle
}

func (v *Value[T]) wait(pred func(T) bool, timeout <-chan time.Time) bool {
	v.mu.Lock()
	if v.closing {
		v.mu.Unlock()
		return false
	}
	v.live++
	defer v.exit()

	for {
		if v.closing {
			v.mu.Unlock()
			return false
		}
		if pred(v.val) {
			v.mu.Unlock()
			return true
		}

		ch := make(chan struct{})
		v.waiters = append(v.waiters, ch)
		v.mu.Unlock()

		select {
		case <-ch:
			v.mu.Lock()
		case <-timeout:
			v.mu.Lock()
			v.removeLocked(ch)
			ok := !v.closing && pred(v.val)
			v.mu.Unlock()
			return ok
		}
	}
}

// exit decrements the live-waiter count and, if a Close is waiting for
// the box to empty, lets it proceed.
func (v *Value[T]) exit() {
	v.mu.Lock()
	v.live--
	if v.closing && v.live == 0 {
		v.cutIdleLocked()
	}
	v.mu.Unlock()
}

func (v *Value[T]) broadcastLocked() {
	for _, ch := range v.waiters {
		close(ch)
	}
	v.waiters = nil
}

func (v *Value[T]) removeLocked(ch chan struct{}) {
	for i, w := range v.waiters {
		if w == ch {
			v.waiters = append(v.waiters[:i], v.waiters[i+1:]...)
			return
		}
	}
}

func (v *Value[T]) cutIdleLocked() {
	if !v.idleCut {
		v.idleCut = true
		close(v.idle)
	}
}
