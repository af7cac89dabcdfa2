package scan

import "time"

// Result aggregates one scan pass. Attempted counts deliveries handed to the
// notifier; Sent and Failed partition it. Skipped counts evaluated items
// that were not due (no expiry, not in the trigger set, cooldown, or owner
// without email). InvalidDates counts items whose expiry string would not
// parse.
type Result struct {
	Attempted    int `json:"attempted"`
	Sent         int `json:"sent"`
	Failed       int `json:"failed"`
	Skipped      int `json:"skipped"`
	InvalidDates int `json:"invalid_dates"`
	Pruned       int `json:"pruned,omitempty"`
}

// Config carries the orchestrator knobs.
type Config struct {
	// Throttle is the pause between consecutive delivery attempts, kept
	// for third-party rate limits.
	Throttle time.Duration
	// Location anchors the midnight used as the reference date.
	Location *time.Location
}

const DefaultThrottle = 500 * time.Millisecond
