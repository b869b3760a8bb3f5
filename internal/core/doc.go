// Package core owns the countdown timer's state and ticking engine.
//
// Overview
//
// The core models a single process-lifetime countdown: TimerState holds the
// remaining whole seconds and a RUNNING/PAUSED status, and Engine wraps the
// one TimerState instance behind a mutex together with a background task
// that applies one tick per second.
//
// Concurrency & Safety
//
// Engine is safe for concurrent use. Every operation (Set, Start, Stop, Add,
// Subtract, Reset, Status) and the tick take the same lock for their whole
// duration, so concurrent callers and the ticker observe a total order of
// mutations. Reads return Snapshot copies that need no further locking.
// Callers must never touch TimerState directly.
//
// Invariants
//
// Remaining seconds never go negative: a decrement or Subtract that would
// cross zero clamps at zero and forces PAUSED. Starting a timer with nothing
// remaining is a no-op, as is starting one already running or pausing one
// already paused. A fresh state is {0, PAUSED}.
//
// Errors
//
// The only error the core produces is ErrNegativeDuration, returned by
// Set/Add/Subtract before anything is applied. Start, Stop, Reset and Status
// are total. The core never logs; errors surface synchronously to the
// caller, and the API layer alone turns them into wire responses.
//
// Ticking
//
// The ticking loop is a fixed-rate periodic task started by Run and stopped
// by Shutdown. It wakes once per interval and calls TickOnce under the
// engine lock; there is no drift correction and none is needed at one-second
// granularity.
package core
