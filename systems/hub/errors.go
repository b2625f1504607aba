package hub

import "fmt"

// ErrNotInitialized defines hub usage before Init.
type ErrNotInitialized struct {
}

// Error formats output.
func (e *ErrNotInitialized) Error() string {
	return "hub is not initialized"
}

// ErrUpdateFailed defines a refresh cycle with failed devices.
// The first API-class failure is kept so credential rejections stay
// distinguishable from transient errors in the aggregate.
type ErrUpdateFailed struct {
	Failed int
	Reason error
}

// Error formats output.
func (e *ErrUpdateFailed) Error() string {
	return fmt.Sprintf("update failed for %d devices", e.Failed)
}

// Cause returns the first API-class failure.
func (e *ErrUpdateFailed) Cause() error {
	return e.Reason
}
