package dispatch

import "github.com/google/uuid"

// Handle is a non-owning reference to a pending task. Copies share
// identity. The zero Handle is expired. A Handle remains safe to query and
// cancel after its record is consumed, cancelled, cleared, or the owning
// dispatcher is closed; those operations simply become no-ops.
type Handle struct {
	d  *Dispatcher
	id uuid.UUID
}

// Expired reports whether the referenced task is no longer pending: it was
// consumed by an executor, cancelled, or dropped by Clear/Close.
func (h Handle) Expired() bool {
	if h.d == nil {
		return true
	}
	h.d.mu.Lock()
	defer h.d.mu.Unlock()
	_, ok := h.d.index[h.id]
	return !ok
}

// Cancel removes the referenced task from its dispatcher's pending queue
// if it is still there. No effect on a running or already-gone task.
// Idempotent.
func (h Handle) Cancel() {
	if h.d == nil {
		return
	}
	h.d.cancel(h.id)
}
