package errors

import "errors"

// Common error types used across the bytechan library

var (
	// ErrClosed indicates that a send was attempted on a closed channel
	ErrClosed = errors.New("channel is closed")

	// ErrQueueFull indicates that a non-blocking send found the queue at
	// capacity at the moment of the attempt
	ErrQueueFull = errors.New("channel queue is full")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsRetryable returns true if the error indicates a condition that might
// be resolved by retrying the operation
func IsRetryable(err error) bool {
	return errors.Is(err, ErrQueueFull)
}

// IsTerminal returns true if the error indicates a permanent condition
// that retrying cannot resolve
func IsTerminal(err error) bool {
	return errors.Is(err, ErrClosed)
}
