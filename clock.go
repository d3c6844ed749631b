package bookstore

import "time"

// Clocker provides the current time. The inventory timestamps its transaction
// log entries through a Clocker so tests can pin time.
type Clocker interface {
	Now() time.Time
}

// SystemClock is the default Clocker, backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
