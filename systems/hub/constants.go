package hub

import "time"

const (
	logSystem = "hub"

	hubName = "petlibro"

	// A device refreshed within the debounce window is not polled again,
	// so update storms collapse into one cloud round-trip.
	debounceWindow = 10 * time.Second

	updatePeriod = 60 * time.Second

	defaultPollSchedule = "@every 1m0s"
)
