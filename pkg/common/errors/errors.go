package errors

import "errors"

// Common error types used across the jobsys library

var (
	// ErrNilTask indicates that a nil task was submitted
	ErrNilTask = errors.New("task is nil")

	// ErrNotAccepting indicates that the scheduler is stopping or stopped
	// and no longer accepts submissions
	ErrNotAccepting = errors.New("scheduler is not accepting tasks")

	// ErrAlreadyRunning indicates that a start operation was attempted on
	// a component that is already running
	ErrAlreadyRunning = errors.New("already running")

	// ErrDuplicateEntry indicates that an entry with the same id already exists
	ErrDuplicateEntry = errors.New("duplicate entry id")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsRejection returns true if the error indicates a submission that was
// refused rather than a failure inside the scheduler
func IsRejection(err error) bool {
	return errors.Is(err, ErrNilTask) || errors.Is(err, ErrNotAccepting)
}
