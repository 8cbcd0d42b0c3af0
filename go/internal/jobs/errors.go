package jobs

import "errors"

var (
	// ErrNoQueuedJobs is returned by a claim attempt when the queue is empty
	ErrNoQueuedJobs = errors.New("no queued jobs")
	// ErrJobNotFound is returned when a user has no job row
	ErrJobNotFound = errors.New("job not found")
)
