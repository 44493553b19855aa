package kernel

import "time"

// Clock supplies the current time to components whose decisions depend on it,
// such as urgency flagging and terminal-timestamp stamping. Injecting a Clock
// instead of calling time.Now directly keeps those decisions deterministic
// under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the system wall clock.
type SystemClock struct{}

// NewSystemClock creates a Clock that reads the system wall clock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock frozen at a single instant, for tests and replays.
type FixedClock struct {
	instant time.Time
}

// NewFixedClock creates a Clock that always reports the given instant.
func NewFixedClock(instant time.Time) FixedClock {
	return FixedClock{instant: instant}
}

// Now returns the frozen instant.
func (c FixedClock) Now() time.Time {
	return c.instant
}
