package dispatch

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	flerrors "github.com/fr3nzy90/flib-go/pkg/common/errors"
	"github.com/fr3nzy90/flib-go/pkg/common/validation"
	"github.com/fr3nzy90/flib-go/pkg/metrics"
)

// Task represents a unit of work submitted to a Dispatcher.
type Task func()

// Config holds configuration options for creating a Dispatcher.
type Config struct {
	// Enabled determines whether the dispatcher starts dispatching
	// immediately. A disabled dispatcher accepts and queues tasks but
	// does not hand them to executors until Enable is called.
	Enabled bool

	// Executors is the number of executor goroutines. Must be greater
	// than 0.
	Executors int

	// Name identifies this dispatcher in logs and metrics.
	Name string

	// Logger is an optional structured logger for lifecycle events.
	// If nil, nothing is logged.
	Logger *zerolog.Logger

	// Metrics configures Prometheus instrumentation for this dispatcher.
	Metrics metrics.Config
}

// record is a pending task. Owned exclusively by the dispatcher's queue
// until consumed by an executor, cancelled, or cleared.
type record struct {
	id       uuid.UUID
	task     Task
	priority uint
}

// Dispatcher owns a priority-ordered queue of pending tasks and a pool of
// executor goroutines that pull and run them.
//
// Ordering: priority-0 tasks are appended FIFO; a task with priority > 0 is
// inserted immediately after the last pending task whose priority is greater
// than or equal to its own, so strictly higher priorities drain first and
// equal priorities stay FIFO. Each pending task is consumed exactly once.
//
// The internal lock is never held while a task executes, so a task may call
// back into its own dispatcher.
type Dispatcher struct {
	name string
	log  zerolog.Logger
	ins  instruments

	// lifeMu serializes executor teardown/spawn (SetExecutors, Close).
	lifeMu sync.Mutex

	mu        sync.Mutex
	cond      *sync.Cond
	pending   []*record
	index     map[uuid.UUID]struct{}
	enabled   bool
	stopping  bool
	closed    bool
	executors int
	wg        sync.WaitGroup
}

// New creates an enabled Dispatcher with the given number of executors.
func New(executors int) (*Dispatcher, error) {
	return NewWithConfig(Config{Enabled: true, Executors: executors})
}

// NewWithConfig creates a Dispatcher with the specified configuration.
func NewWithConfig(cfg Config) (*Dispatcher, error) {
	if err := validation.ValidatePositive("dispatch", "executors", cfg.Executors); err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("dispatcher", cfg.Name).Logger()
	}

	d := &Dispatcher{
		name:    cfg.Name,
		log:     logger,
		ins:     newInstruments(cfg.Name, cfg.Metrics),
		index:   make(map[uuid.UUID]struct{}),
		enabled: cfg.Enabled,
	}
	d.cond = sync.NewCond(&d.mu)

	d.mu.Lock()
	d.spawnLocked(cfg.Executors)
	d.mu.Unlock()

	d.log.Debug().Int("executors", cfg.Executors).Bool("enabled", cfg.Enabled).Msg("dispatcher created")
	return d, nil
}

// Invoke queues task at priority 0 and returns a handle for it.
// A nil task is a harmless no-op: the returned handle is already expired.
func (d *Dispatcher) Invoke(task Task) Handle {
	return d.InvokePriority(task, 0)
}

// InvokePriority queues task at the given priority and returns a handle
// for it. Higher priorities are dispatched before lower ones; tasks of
// equal priority run in submission order. A nil task, or an invoke on a
// closed dispatcher, returns an already-expired handle.
func (d *Dispatcher) InvokePriority(task Task, priority uint) Handle {
	if task == nil {
		return Handle{}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return Handle{}
	}

	rec := &record{id: uuid.New(), task: task, priority: priority}

	// Insert after the last pending record whose priority >= the new one.
	i := len(d.pending)
	for i > 0 && d.pending[i-1].priority < priority {
		i--
	}
	d.pending = append(d.pending, nil)
	copy(d.pending[i+1:], d.pending[i:])
	d.pending[i] = rec
	d.index[rec.id] = struct{}{}

	d.ins.invoked()
	d.ins.queued(len(d.pending))
	d.cond.Signal()

	return Handle{d: d, id: rec.id}
}

// Enable resumes dispatch of queued tasks in their original order.
func (d *Dispatcher) Enable() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || d.enabled {
		return
	}
	d.enabled = true
	d.cond.Broadcast()
	d.log.Debug().Msg("dispatcher enabled")
}

// Disable stops further dispatch without dropping queued tasks. Tasks
// already handed to an executor run to completion.
func (d *Dispatcher) Disable() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.enabled {
		return
	}
	d.enabled = false
	d.log.Debug().Msg("dispatcher disabled")
}

// Enabled reports whether the dispatcher is currently dispatching.
func (d *Dispatcher) Enabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.enabled
}

// Len returns the number of tasks pending dispatch. Running tasks are not
// counted.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Empty reports whether no tasks are pending dispatch.
func (d *Dispatcher) Empty() bool {
	return d.Len() == 0
}

// Executors returns the current executor count.
func (d *Dispatcher) Executors() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.executors
}

// Owns reports whether h references a task still pending in this
// dispatcher's queue. A task that is currently executing is not owned.
func (d *Dispatcher) Owns(h Handle) bool {
	if h.d != d {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.index[h.id]
	return ok
}

// Cancel removes the task referenced by h from the pending queue if it is
// still there. It has no effect on a task that is already running or gone.
// Idempotent.
func (d *Dispatcher) Cancel(h Handle) {
	if h.d != d {
		return
	}
	d.cancel(h.id)
}

// Clear drops all pending tasks. In-flight executions are unaffected.
func (d *Dispatcher) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clearLocked()
}

// SetExecutors tears down the current executor goroutines and spawns n
// fresh ones, preserving the enabled/disabled state. Legal only while the
// dispatcher is disabled; returns an error wrapping ErrEnabled otherwise.
func (d *Dispatcher) SetExecutors(n int) error {
	if err := validation.ValidatePositive("dispatch", "executors", n); err != nil {
		return err
	}

	d.lifeMu.Lock()
	defer d.lifeMu.Unlock()

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return flerrors.NewOperationError("dispatch", "SetExecutors", flerrors.ErrClosed)
	}
	if d.enabled {
		d.mu.Unlock()
		return flerrors.NewOperationError("dispatch", "SetExecutors", flerrors.ErrEnabled).
			WithContext("disable the dispatcher first")
	}
	d.stopping = true
	d.cond.Broadcast()
	d.mu.Unlock()

	d.wg.Wait()

	d.mu.Lock()
	d.stopping = false
	d.spawnLocked(n)
	d.mu.Unlock()

	d.log.Debug().Int("executors", n).Msg("executors reconfigured")
	return nil
}

// Close disables dispatch, signals all executors, waits for in-flight
// tasks to finish and the executors to exit, then drops the remaining
// queue. Idempotent. Handles held by callers stay safe to use afterwards.
func (d *Dispatcher) Close() {
	d.lifeMu.Lock()
	defer d.lifeMu.Unlock()

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.enabled = false
	d.stopping = true
	d.cond.Broadcast()
	d.mu.Unlock()

	d.wg.Wait()

	d.mu.Lock()
	d.clearLocked()
	d.executors = 0
	d.ins.executorCount(0)
	d.mu.Unlock()

	d.log.Debug().Msg("dispatcher closed")
}

// spawnLocked starts n executor goroutines. Caller holds d.mu.
func (d *Dispatcher) spawnLocked(n int) {
	d.executors = n
	d.ins.executorCount(n)
	for i := 0; i < n; i++ {
		d.wg.Add(1)
		go d.executor()
	}
}

// clearLocked drops all pending records. Caller holds d.mu.
func (d *Dispatcher) clearLocked() {
	d.ins.cancelled(len(d.pending))
	d.pending = nil
	d.index = make(map[uuid.UUID]struct{})
	d.ins.queued(0)
}

func (d *Dispatcher) cancel(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.index[id]; !ok {
		return
	}
	delete(d.index, id)
	for i, rec := range d.pending {
		if rec.id == id {
			copy(d.pending[i:], d.pending[i+1:])
			d.pending[len(d.pending)-1] = nil
			d.pending = d.pending[:len(d.pending)-1]
			break
		}
	}
	d.ins.cancelled(1)
	d.ins.queued(len(d.pending))
}

// executor is the main loop of one executor goroutine. It dequeues the
// head of the queue, runs it with the lock released, and goes back to
// waiting when the queue is empty or dispatch is disabled.
//
// A panic escaping a task is deliberately not recovered: a crashing task
// is a programming error in caller-supplied work and takes the process
// down rather than being masked.
func (d *Dispatcher) executor() {
	defer d.wg.Done()

	d.mu.Lock()
	for {
		if d.stopping {
			break
		}
		if !d.enabled || len(d.pending) == 0 {
			d.cond.Wait()
			continue
		}

		rec := d.pending[0]
		d.pending[0] = nil
		d.pending = d.pending[1:]
		delete(d.index, rec.id)
		d.ins.queued(len(d.pending))
		d.mu.Unlock()

		start := time.Now()
		rec.task()
		d.ins.executed(time.Since(start))

		d.mu.Lock()
	}
	d.mu.Unlock()
}
