package session

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrRequestFailed defines transport-level failure.
type ErrRequestFailed struct {
	Err error
}

// Error formats output.
func (e *ErrRequestFailed) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

// ErrBadStatus defines non-200 response status.
type ErrBadStatus struct {
	Status int
}

// Error formats output.
func (e *ErrBadStatus) Error() string {
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// ErrBadPayload defines un-parsable response body.
type ErrBadPayload struct {
}

// Error formats output.
func (e *ErrBadPayload) Error() string {
	return "failed to parse response payload"
}

// ErrAPI defines generic vendor application error.
type ErrAPI struct {
	Code int
	Msg  string
}

// Error formats output.
func (e *ErrAPI) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Msg)
}

// ErrInvalidAuth defines vendor-side credentials rejection.
// It is never retried and must surface to the host re-auth flow.
type ErrInvalidAuth struct {
}

// Error formats output.
func (e *ErrInvalidAuth) Error() string {
	return "invalid credentials"
}

// ErrNotAuthenticated defines session expiry which survived a re-login retry.
type ErrNotAuthenticated struct {
}

// Error formats output.
func (e *ErrNotAuthenticated) Error() string {
	return "not authenticated"
}

// IsAPIError returns true when an error originates from the vendor API
// or its transport, as opposed to device-local problems.
func IsAPIError(err error) bool {
	switch errors.Cause(err).(type) {
	case *ErrRequestFailed, *ErrBadStatus, *ErrBadPayload, *ErrAPI, *ErrInvalidAuth, *ErrNotAuthenticated:
		return true
	}

	return false
}

// IsInvalidAuth returns true when an error means credentials rejection.
func IsInvalidAuth(err error) bool {
	_, ok := errors.Cause(err).(*ErrInvalidAuth)
	return ok
}
