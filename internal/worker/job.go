package worker

import (
	"time"
)

// Job represents one sweep request submitted to the worker. Requests
// coalesce in the mailbox, so a burst of triggers produces one sweep.
type Job struct {
	Reason string // "fsnotify", "poll", "schedule", "startup"
	Time   time.Time
}
