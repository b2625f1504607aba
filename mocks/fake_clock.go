//+build !release

package mocks

import "time"

// Fake clock with manual advancing.
type FakeClock struct {
	current time.Time
}

func (f *FakeClock) Now() time.Time {
	return f.current
}

// Advance moves the clock forward.
func (f *FakeClock) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}

// FakeNewClock creates a fake clock provider.
func FakeNewClock(start time.Time) *FakeClock {
	return &FakeClock{current: start}
}
