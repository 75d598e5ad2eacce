package nxt

import (
	"fmt"
)

// ValidationError indicates a caller-supplied argument is outside the
// legal domain. It is always raised before any transport I/O, so the
// caller can correct the input and retry.
type ValidationError struct {
	Reason string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return "invalid argument: " + e.Reason
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// BadResponseError indicates a reply frame doesn't match the command
// sent, i.e. the link is desynchronized. Not retried automatically.
type BadResponseError struct {
	Reason string
	Reply  []byte
}

// Error implements error.
func (e *BadResponseError) Error() string {
	return "bad response: " + e.Reason
}

// StatusError wraps a nonzero status byte from an otherwise well-formed
// reply. Code meanings are device-specific and not interpreted here.
type StatusError struct {
	Code byte
}

// Error implements error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("command status 0x%02x", e.Code)
}
