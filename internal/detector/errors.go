package detector

import "errors"

var (
	// ErrEnvironment marks a fatal detection failure: the session type could
	// not be determined or is not one of x11 / wayland.
	ErrEnvironment = errors.New("environment error")

	ErrProcessTableUnavailable = errors.New("process table unavailable")
)
