package grayscott

import (
	"errors"
	"fmt"
)

// Domain errors for simulation runs.
var (
	// ErrInvalidConfig indicates parameters that cannot produce a valid run.
	ErrInvalidConfig = errors.New("grayscott: invalid configuration")

	// ErrUnknownSeries indicates a history lookup for a name that was
	// never recorded.
	ErrUnknownSeries = errors.New("grayscott: unknown history series")
)

func errInvalid(why string) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, why)
}
