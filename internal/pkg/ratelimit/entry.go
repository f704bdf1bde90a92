package ratelimit

import "time"

// Entry is the attempt history of one identifier.
type Entry struct {
	Attempts     int        `json:"attempts"`
	FirstAttempt time.Time  `json:"firstAttempt"`
	LastAttempt  time.Time  `json:"lastAttempt"`
	BlockedUntil *time.Time `json:"blockedUntil,omitempty"`
}

func (e *Entry) blockedAt(now time.Time) bool {
	return e.BlockedUntil != nil && e.BlockedUntil.After(now)
}

func (e *Entry) windowExpired(now time.Time, window time.Duration) bool {
	return now.Sub(e.FirstAttempt) > window
}

// Status is the outcome of a Check or Peek.
type Status struct {
	Allowed           bool
	RemainingAttempts int
	ResetTime         *time.Time
}

// RetryAfter is the remaining lockout, zero when the identifier is not blocked.
func (s Status) RetryAfter(now time.Time) time.Duration {
	if s.ResetTime == nil {
		return 0
	}
	if d := s.ResetTime.Sub(now); d > 0 {
		return d
	}
	return 0
}

func blockedStatus(until time.Time) Status {
	return Status{Allowed: false, RemainingAttempts: 0, ResetTime: &until}
}

func deniedStatus() Status {
	return Status{Allowed: false, RemainingAttempts: 0}
}
