package lua

import "errors"

var (
	// ErrHostClosed is returned when the host has been closed.
	ErrHostClosed = errors.New("lua host closed")

	// ErrDuplicateMotion is returned when a script registers a motion name
	// that already exists.
	ErrDuplicateMotion = errors.New("duplicate motion name")
)
