// Package utils holds small helpers shared by the analysis pipelines.
package utils

import (
	"time"

	"github.com/rs/zerolog"
)

// SlowThreshold is the duration above which a timed operation is logged at warn level
const SlowThreshold = 5 * time.Second

// Timer measures how long an operation takes and logs it on Stop
type Timer struct {
	start time.Time
	name  string
	log   zerolog.Logger
	since func(time.Time) time.Duration
}

// NewTimer starts a timer for the named operation
func NewTimer(name string, log zerolog.Logger) *Timer {
	return &Timer{
		start: time.Now(),
		name:  name,
		log:   log,
		since: time.Since,
	}
}

// Stop logs the elapsed time and returns it
func (t *Timer) Stop() time.Duration {
	duration := t.since(t.start)

	event := t.log.Debug()
	if duration > SlowThreshold {
		event = t.log.Warn()
	}
	event.
		Str("operation", t.name).
		Dur("duration", duration).
		Msg("Operation finished")

	return duration
}
