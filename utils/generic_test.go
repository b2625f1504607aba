package utils

import (
	"testing"
	"time"

	"bou.ke/monkey"
	"github.com/stretchr/testify/assert"
)

// Tests epoch helper with a patched wall clock.
func TestTimeNow(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	monkey.Patch(time.Now, func() time.Time {
		return fixed
	})
	defer monkey.Unpatch(time.Now)

	assert.Equal(t, fixed.Unix(), TimeNow(), "epoch")
}

// Tests the wall clock provider.
func TestClockProvider(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	monkey.Patch(time.Now, func() time.Time {
		return fixed
	})
	defer monkey.Unpatch(time.Now)

	assert.Equal(t, fixed, NewClock().Now(), "now")
}
