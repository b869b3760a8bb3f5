package core

import "testing"

func TestNewTimerState_Initial(t *testing.T) {
	s := NewTimerState()
	if got := s.Remaining(); got != 0 {
		t.Fatalf("remaining = %d, want 0", got)
	}
	if got := s.Status(); got != StatusPaused {
		t.Fatalf("status = %q, want %q", got, StatusPaused)
	}
	if got := s.Display(); got != "0:00" {
		t.Fatalf("display = %q, want %q", got, "0:00")
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		sec  int
		want string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{150, "2:30"},
		{600, "10:00"},
		{3599, "59:59"},
		{3600, "60:00"}, // minutes are unbounded, not rolled into hours
		{-7, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.sec); got != tt.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tt.sec, got, tt.want)
		}
	}
}

func TestTickOnce_PausedIsNoop(t *testing.T) {
	s := NewTimerState()
	s.setRemaining(10)
	for i := 0; i < 5; i++ {
		s.TickOnce()
	}
	if got := s.Remaining(); got != 10 {
		t.Fatalf("remaining = %d, want 10 (paused timer must not tick)", got)
	}
}

func TestTickOnce_DrivesToZeroAndPauses(t *testing.T) {
	s := NewTimerState()
	s.setRemaining(5)
	s.start()
	if !s.Running() {
		t.Fatalf("status = %q, want %q after start", s.Status(), StatusRunning)
	}

	for i := 0; i < 4; i++ {
		s.TickOnce()
	}
	if got := s.Remaining(); got != 1 {
		t.Fatalf("remaining after 4 ticks = %d, want 1", got)
	}
	if !s.Running() {
		t.Fatalf("timer paused before reaching zero")
	}

	s.TickOnce()
	if got := s.Remaining(); got != 0 {
		t.Fatalf("remaining after 5 ticks = %d, want 0", got)
	}
	if got := s.Status(); got != StatusPaused {
		t.Fatalf("status at zero = %q, want %q", got, StatusPaused)
	}

	// A further tick on the drained, paused state changes nothing.
	s.TickOnce()
	if got := s.Remaining(); got != 0 {
		t.Fatalf("remaining after extra tick = %d, want 0", got)
	}
	if got := s.Status(); got != StatusPaused {
		t.Fatalf("status after extra tick = %q, want %q", got, StatusPaused)
	}
}

func TestStart_EmptyTimerStaysPaused(t *testing.T) {
	s := NewTimerState()
	s.start()
	if got := s.Status(); got != StatusPaused {
		t.Fatalf("status = %q, want %q (starting an empty timer has no effect)", got, StatusPaused)
	}
}

func TestStateStart_AlreadyRunningIsNoop(t *testing.T) {
	s := NewTimerState()
	s.setRemaining(3)
	s.start()
	s.start()
	if got := s.Status(); got != StatusRunning {
		t.Fatalf("status = %q, want %q", got, StatusRunning)
	}
	if got := s.Remaining(); got != 3 {
		t.Fatalf("remaining = %d, want 3", got)
	}
}

func TestPause_Idempotent(t *testing.T) {
	s := NewTimerState()
	s.setRemaining(3)
	s.start()
	s.pause()
	s.pause()
	if got := s.Status(); got != StatusPaused {
		t.Fatalf("status = %q, want %q", got, StatusPaused)
	}
	if got := s.Remaining(); got != 3 {
		t.Fatalf("remaining = %d, want 3 (pause must not touch the countdown)", got)
	}
}
