package core

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
)

// Run status values, as exposed on the wire.
const (
	StatusRunning = "RUNNING"
	StatusPaused  = "PAUSED"
)

// Transition events for the run-status machine.
const (
	eventStart  = "start"
	eventPause  = "pause"
	eventExpire = "expire"
)

// TimerState is the countdown data model: seconds remaining plus the run
// status. The run status is a two-state machine:
//
//	PAUSED  -> RUNNING  (start; only with remaining > 0)
//	RUNNING -> PAUSED   (pause, or expire when the countdown hits zero)
//
// TimerState is not safe for concurrent use on its own; the Engine owns the
// single instance and serializes every access behind its lock.
type TimerState struct {
	remaining int
	status    *fsm.FSM
}

// NewTimerState constructs a fresh state: zero remaining, paused.
func NewTimerState() *TimerState {
	return &TimerState{
		status: fsm.NewFSM(
			StatusPaused,
			fsm.Events{
				{Name: eventStart, Src: []string{StatusPaused}, Dst: StatusRunning},
				{Name: eventPause, Src: []string{StatusRunning}, Dst: StatusPaused},
				{Name: eventExpire, Src: []string{StatusRunning}, Dst: StatusPaused},
			},
			fsm.Callbacks{},
		),
	}
}

// Remaining returns the seconds left to count down. Never negative.
func (s *TimerState) Remaining() int { return s.remaining }

// Status returns the current run status string (StatusRunning/StatusPaused).
func (s *TimerState) Status() string { return s.status.Current() }

// Running reports whether the countdown is actively ticking.
func (s *TimerState) Running() bool { return s.status.Is(StatusRunning) }

// Display formats the remaining duration for human consumption.
func (s *TimerState) Display() string { return FormatSeconds(s.remaining) }

// FormatSeconds converts a number of seconds into an M:SS string. Minutes are
// unbounded; seconds are zero-padded to two digits. Negative input renders
// as zero.
func FormatSeconds(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

// TickOnce applies one tick of the countdown: if running, decrement by one
// second, clamping at zero; reaching zero expires the run and forces a pause.
// When paused this is a no-op, so repeated ticks on a drained timer are
// harmless.
func (s *TimerState) TickOnce() {
	if !s.Running() {
		return
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining == 0 {
		s.fire(eventExpire)
	}
}

// start moves the machine to RUNNING. Starting an empty or already-running
// timer is a no-op.
func (s *TimerState) start() {
	if s.Running() || s.remaining == 0 {
		return
	}
	s.fire(eventStart)
}

// pause moves the machine to PAUSED. Idempotent.
func (s *TimerState) pause() {
	if !s.Running() {
		return
	}
	s.fire(eventPause)
}

func (s *TimerState) setRemaining(sec int) { s.remaining = sec }

// fire applies a transition event. The guards above guarantee the event is
// legal for the current state, so a rejection here is a programming error.
func (s *TimerState) fire(event string) {
	if err := s.status.Event(context.Background(), event); err != nil {
		panic(fmt.Sprintf("core: transition %q from %s: %v", event, s.status.Current(), err))
	}
}
