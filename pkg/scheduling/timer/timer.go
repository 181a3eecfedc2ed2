package timer

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	flerrors "github.com/fr3nzy90/flib-go/pkg/common/errors"
	"github.com/fr3nzy90/flib-go/pkg/metrics"
)

// Event represents the unit of work fired by a Timer.
type Event func()

// Mode selects the periodic re-firing discipline.
type Mode int

const (
	// FixedDelay schedules the next firing relative to when the previous
	// execution completed, guaranteeing a minimum gap between executions.
	// The overall cadence drifts later by however long each execution took.
	FixedDelay Mode = iota

	// FixedRate schedules the next firing relative to the previous
	// scheduled fire time, independent of execution duration. If an
	// execution overruns its period the next firing happens immediately,
	// preserving the long-run average cadence.
	FixedRate
)

func (m Mode) String() string {
	switch m {
	case FixedRate:
		return "fixed-rate"
	default:
		return "fixed-delay"
	}
}

type state int

const (
	stateIdle state = iota
	stateActivating
	stateActive
	stateClosed
)

// Config holds configuration options for creating a Timer.
type Config struct {
	// Name identifies this timer in logs and metrics.
	Name string

	// Logger is an optional structured logger for lifecycle events.
	// If nil, nothing is logged.
	Logger *zerolog.Logger

	// Metrics configures Prometheus instrumentation for this timer.
	Metrics metrics.Config
}

// Timer is a single-slot delayed/periodic event scheduler. It holds at
// most one schedule at a time; scheduling again atomically replaces the
// previous one. One background runner goroutine, created at construction
// and joined by Close, performs all firings, so at most one execution of
// the event is ever in flight.
//
// The internal lock is never held while the event executes, so the event
// may call Clear, Schedule or Reschedule on its own timer.
type Timer struct {
	name   string
	log    zerolog.Logger
	ins    instruments
	parser cron.Parser

	mu      sync.Mutex
	st      state
	gen     uint64 // bumped on every re-arm/disarm, invalidates in-flight waits
	event   Event
	delay   time.Duration
	period  time.Duration
	mode    Mode
	sched   cron.Schedule
	changed chan struct{} // closed and replaced on every state change
	done    chan struct{} // closed when the runner exits
}

// New creates a Timer with default configuration.
func New() *Timer {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a Timer with the specified configuration.
func NewWithConfig(cfg Config) *Timer {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("timer", cfg.Name).Logger()
	}

	t := &Timer{
		name:    cfg.Name,
		log:     logger,
		ins:     newInstruments(cfg.Name, cfg.Metrics),
		parser:  cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow),
		changed: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go t.run()
	return t
}

// Schedule arms the timer to fire event once after delay, replacing any
// existing schedule. A nil event is a harmless no-op.
func (t *Timer) Schedule(event Event, delay time.Duration) {
	t.ScheduleRepeating(event, delay, 0, FixedDelay)
}

// ScheduleRepeating arms the timer to fire event after delay and then
// every period according to mode, replacing any existing schedule. A zero
// period degrades to a one-shot schedule. A nil event is a harmless no-op.
func (t *Timer) ScheduleRepeating(event Event, delay, period time.Duration, mode Mode) {
	if event == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	if period < 0 {
		period = 0
	}
	if t.arm(event, delay, period, mode, nil) {
		t.log.Debug().
			Dur("delay", delay).
			Dur("period", period).
			Stringer("mode", mode).
			Msg("timer scheduled")
	}
}

// ScheduleCron arms the timer to fire event at the times described by the
// cron expression (six fields, seconds first), replacing any existing
// schedule. A nil event is a harmless no-op.
func (t *Timer) ScheduleCron(event Event, expr string) error {
	if event == nil {
		return nil
	}
	sched, err := t.parser.Parse(expr)
	if err != nil {
		return flerrors.NewValidationError("timer", "cron", expr, err.Error())
	}
	if !t.arm(event, 0, 0, FixedDelay, sched) {
		return flerrors.NewOperationError("timer", "ScheduleCron", flerrors.ErrClosed)
	}
	t.log.Debug().Str("cron", expr).Msg("timer scheduled")
	return nil
}

// Reschedule re-arms the last-configured event using its stored delay,
// counted from now. It is a no-op if no event was ever configured; the
// previously configured period, mode or cron schedule is kept.
func (t *Timer) Reschedule() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.st == stateClosed || t.event == nil {
		return
	}
	t.st = stateActivating
	t.gen++
	t.wakeLocked()
	t.ins.scheduled(true)
	t.log.Debug().Msg("timer rescheduled")
}

// Clear disarms the timer. A wait in progress is aborted without firing;
// an execution already in flight runs to completion.
func (t *Timer) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.st == stateClosed || t.st == stateIdle {
		return
	}
	t.st = stateIdle
	t.gen++
	t.wakeLocked()
	t.ins.scheduled(false)
	t.log.Debug().Msg("timer cleared")
}

// Scheduled reports whether the timer currently holds an armed schedule.
func (t *Timer) Scheduled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.st == stateActivating || t.st == stateActive
}

// Close disarms the timer, wakes the runner and waits for it to exit.
// Idempotent. Scheduling on a closed timer is a no-op.
func (t *Timer) Close() {
	t.mu.Lock()
	if t.st == stateClosed {
		t.mu.Unlock()
		<-t.done
		return
	}
	t.st = stateClosed
	t.gen++
	t.wakeLocked()
	t.mu.Unlock()

	<-t.done
	t.ins.scheduled(false)
	t.log.Debug().Msg("timer closed")
}

// arm installs a new schedule record and moves to activating. Returns
// false if the timer is closed.
func (t *Timer) arm(event Event, delay, period time.Duration, mode Mode, sched cron.Schedule) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.st == stateClosed {
		return false
	}
	t.event = event
	t.delay = delay
	t.period = period
	t.mode = mode
	t.sched = sched
	t.st = stateActivating
	t.gen++
	t.wakeLocked()
	t.ins.scheduled(true)
	return true
}

// wakeLocked broadcasts a state change to the runner. Caller holds t.mu.
func (t *Timer) wakeLocked() {
	close(t.changed)
	t.changed = make(chan struct{})
}

// run is the timer's single background runner.
func (t *Timer) run() {
	defer close(t.done)

	for {
		t.mu.Lock()
		if t.st == stateClosed {
			t.mu.Unlock()
			return
		}
		if t.st != stateActivating {
			ch := t.changed
			t.mu.Unlock()
			<-ch
			continue
		}

		// Take a snapshot of the armed record; gen invalidates it if the
		// schedule is replaced or cleared while we wait or fire.
		gen := t.gen
		event := t.event
		period := t.period
		mode := t.mode
		sched := t.sched
		t.st = stateActive

		now := time.Now()
		var next time.Time
		if sched != nil {
			next = sched.Next(now)
		} else {
			next = now.Add(t.delay)
		}
		t.mu.Unlock()

		for t.waitUntil(next, gen) {
			start := time.Now()
			event()
			end := time.Now()
			t.ins.fired(end.Sub(start))

			t.mu.Lock()
			if t.gen != gen || t.st != stateActive {
				// Replaced, cleared or closed while firing.
				t.mu.Unlock()
				break
			}
			if sched != nil {
				next = sched.Next(end)
				t.mu.Unlock()
				continue
			}
			if period <= 0 {
				// One-shot completed.
				t.st = stateIdle
				t.ins.scheduled(false)
				t.mu.Unlock()
				break
			}
			switch mode {
			case FixedRate:
				next = next.Add(period)
				if !end.Before(next) {
					t.ins.overrun()
				}
			default:
				next = end.Add(period)
			}
			t.mu.Unlock()
		}
	}
}

// waitUntil blocks until deadline passes (returns true) or the schedule
// generation changes (returns false, abort without firing).
func (t *Timer) waitUntil(deadline time.Time, gen uint64) bool {
	for {
		t.mu.Lock()
		if t.gen != gen || t.st != stateActive {
			t.mu.Unlock()
			return false
		}
		ch := t.changed
		t.mu.Unlock()

		d := time.Until(deadline)
		if d <= 0 {
			return true
		}

		tm := time.NewTimer(d)
		select {
		case <-tm.C:
		case <-ch:
			tm.Stop()
		}
	}
}
