package providers

import "time"

// IClockProvider defines wall clock used by caches and debounce checks,
// injected so expiry is deterministic in tests.
type IClockProvider interface {
	Now() time.Time
}
