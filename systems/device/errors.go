package device

import "fmt"

// ErrUnknownProduct defines a product name without a registered device.
type ErrUnknownProduct struct {
	Product string
}

// Error formats output.
func (e *ErrUnknownProduct) Error() string {
	return fmt.Sprintf("unknown product %s", e.Product)
}

// ErrUnsupportedCommand defines a command outside the device spec.
type ErrUnsupportedCommand struct {
	Command string
}

// Error formats output.
func (e *ErrUnsupportedCommand) Error() string {
	return fmt.Sprintf("command %s is not supported", e.Command)
}

// ErrBadCommandArgument defines a missing or mistyped command argument.
type ErrBadCommandArgument struct {
	Argument string
}

// Error formats output.
func (e *ErrBadCommandArgument) Error() string {
	return fmt.Sprintf("invalid or missing argument %s", e.Argument)
}

// ErrFragmentFailed defines a failed required state fragment.
type ErrFragmentFailed struct {
	Endpoint string
}

// Error formats output.
func (e *ErrFragmentFailed) Error() string {
	return fmt.Sprintf("failed to fetch %s", e.Endpoint)
}
