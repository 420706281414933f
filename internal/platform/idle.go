package platform

import "time"

// IdleProvider reports how long the user has gone without keyboard or
// mouse input. The engine compares the value against its idle timeout
// on every tick.
type IdleProvider interface {
	IdleDuration() (time.Duration, error)
}

// NewIdleProvider returns the idle query for the current OS.
func NewIdleProvider() IdleProvider {
	return newIdleProvider()
}
