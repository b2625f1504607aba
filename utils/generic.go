// Package utils contains various helpers.
package utils

import (
	"time"

	"github.com/jjjonesjr33/petlibro/providers"
)

// TimeNow returns epoch UTC.
func TimeNow() int64 {
	return time.Now().UTC().Unix()
}

// Wall clock implementation.
type clockProvider struct {
}

// Now returns current UTC time.
func (c *clockProvider) Now() time.Time {
	return time.Now().UTC()
}

// NewClock constructs a new wall clock.
func NewClock() providers.IClockProvider {
	return &clockProvider{}
}
