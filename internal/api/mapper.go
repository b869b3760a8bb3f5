package api

import "github.com/sanverite/countdownd/internal/core"

// FromSnapshot converts a core snapshot into the public success envelope.
// Both endpoint families go through this single mapping, which is what keeps
// their responses byte-for-byte consistent.
func FromSnapshot(s core.Snapshot) TimerResponse {
	return TimerResponse{
		Success:          true,
		Status:           s.Status,
		RemainingSeconds: s.Remaining,
		Display:          s.Display,
	}
}
