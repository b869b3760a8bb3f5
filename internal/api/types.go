package api

// Public JSON types returned by the API. These are intentionally decoupled
// from the internal core types to preserve API stability and allow internal
// refactors without breaking clients.

// TimerResponse is the uniform envelope both endpoint families return on
// success. Display mirrors RemainingSeconds formatted as M:SS.
type TimerResponse struct {
	Success          bool   `json:"success"`
	Status           string `json:"status"`
	RemainingSeconds int    `json:"remainingSeconds"`
	Display          string `json:"display"`
}

// ErrorResponse is the envelope for any failed request. Success is always
// false; Error carries a human-readable message.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// DurationRequest is the legacy JSON body for set/add/remove. Both fields
// are optional and default to zero; the handler combines them as
// minutes*60 + seconds.
type DurationRequest struct {
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}
