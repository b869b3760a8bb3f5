package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/evan-idocoding/zkit/rt/task"
)

// ErrNegativeDuration is returned by Set/Add/Subtract when given a negative
// number of seconds. The operation applies nothing in that case.
var ErrNegativeDuration = errors.New("duration must be non-negative")

// Snapshot is a read model of the timer, safe to retain without locking.
type Snapshot struct {
	Status    string
	Remaining int
	Display   string
}

// EngineOptions configures the Engine.
type EngineOptions struct {
	// TickInterval is the cadence of the background tick.
	// Zero means one second; anything shorter exists for tests only.
	TickInterval time.Duration
}

// Engine owns the single TimerState for the process plus the background
// ticking loop. Every public operation, and the tick itself, takes the same
// lock for its whole duration, so callers and the ticker observe a total
// order of mutations and never a torn state. Lock hold time is O(1); no
// operation blocks or performs I/O under the lock.
type Engine struct {
	mu    sync.Mutex
	state *TimerState

	tasks *task.Manager
}

// NewEngine constructs an engine with a fresh paused state and registers the
// ticking task. The ticker does not run until Run is called.
func NewEngine(opts EngineOptions) *Engine {
	if opts.TickInterval == 0 {
		opts.TickInterval = time.Second
	}

	e := &Engine{
		state: NewTimerState(),
		tasks: task.NewManager(),
	}
	e.tasks.MustAdd(
		task.Every(opts.TickInterval, func(context.Context) error {
			e.Tick()
			return nil
		}),
		task.WithName("tick"),
		task.WithEveryMode(task.EveryFixedRate),
	)
	return e
}

// Run starts the background ticking loop. It returns immediately; the loop
// lives until Shutdown. Calling Run more than once is an error.
func (e *Engine) Run(ctx context.Context) error {
	return e.tasks.Start(ctx)
}

// Shutdown stops the ticking loop, waiting for an in-flight tick to finish
// or ctx to expire.
func (e *Engine) Shutdown(ctx context.Context) error {
	return e.tasks.Shutdown(ctx)
}

// Tick applies one tick under the lock. The background task calls this once
// per interval; tests may call it directly to drive time deterministically.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.TickOnce()
}

// Set replaces the remaining duration and forces a pause. It never
// auto-starts the countdown.
func (e *Engine) Set(totalSeconds int) (Snapshot, error) {
	if totalSeconds < 0 {
		return Snapshot{}, ErrNegativeDuration
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.pause()
	e.state.setRemaining(totalSeconds)
	return e.snapshotLocked(), nil
}

// Start begins the countdown. Starting an empty or already-running timer is
// a no-op; the returned snapshot reflects whichever status resulted.
func (e *Engine) Start() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.start()
	return e.snapshotLocked()
}

// Stop pauses the countdown, leaving the remaining duration untouched.
// Idempotent.
func (e *Engine) Stop() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.pause()
	return e.snapshotLocked()
}

// Add extends the remaining duration. The run status is unchanged.
func (e *Engine) Add(seconds int) (Snapshot, error) {
	if seconds < 0 {
		return Snapshot{}, ErrNegativeDuration
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.setRemaining(e.state.Remaining() + seconds)
	return e.snapshotLocked(), nil
}

// Subtract shortens the remaining duration, clamping at zero. Clamping to
// zero forces a pause.
func (e *Engine) Subtract(seconds int) (Snapshot, error) {
	if seconds < 0 {
		return Snapshot{}, ErrNegativeDuration
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	rem := e.state.Remaining() - seconds
	if rem < 0 {
		rem = 0
	}
	e.state.setRemaining(rem)
	if rem == 0 {
		e.state.pause()
	}
	return e.snapshotLocked(), nil
}

// Reset returns the timer to its initial state: zero remaining, paused.
func (e *Engine) Reset() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.pause()
	e.state.setRemaining(0)
	return e.snapshotLocked()
}

// Status returns the current snapshot without mutating anything.
func (e *Engine) Status() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Status:    e.state.Status(),
		Remaining: e.state.Remaining(),
		Display:   e.state.Display(),
	}
}
