package clock

import "time"

// Clock supplies the current time to services so that deadline checks and
// award timestamps are testable with a fixed time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// System returns the wall clock in UTC.
func System() Clock {
	return systemClock{}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// Fixed returns a clock pinned to t. Intended for tests.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}
