package waveguide

import (
	"errors"
	"fmt"
)

var (
	// ErrParameter is returned when a physical parameter is outside of its
	// valid domain, such as a non-positive radius or width.
	ErrParameter = errors.New("invalid parameter")

	// ErrRange is returned when a derived quantity falls outside of its
	// valid domain. Such values are never clamped.
	ErrRange = errors.New("geometry out of range")

	// ErrDegenerateSegment is returned when extending a path would produce a
	// straight segment of non-positive length.
	ErrDegenerateSegment = fmt.Errorf("%w: degenerate segment", ErrRange)
)

// ContinuityError describes a primitive whose start state doesn't match the
// end state of the primitive before it.
type ContinuityError struct {
	// Index of the offending primitive.
	Index int
	// Want is the trailing state of the path before the primitive.
	Want State
	// Got is the primitive's start state.
	Got State
}

func (err *ContinuityError) Error() string {
	return fmt.Sprintf("discontinuity at primitive %d: path ends at %s, primitive starts at %s",
		err.Index, err.Want, err.Got)
}

func parameterError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrParameter}, args...)...)
}

func rangeError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrRange}, args...)...)
}
