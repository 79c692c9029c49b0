package advanced

import "github.com/pkg/errors"

// The only error a caller is expected to handle. Test for it with errors.Is;
// the returned error carries the details.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgumentf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// Broken internal invariants (as opposed to bad input) are raised as panics,
// so that the scanning code doesn't have to thread errors through every
// step. Every public entry point recovers them and converts them to errors.

// Only panics of this type are converted back to errors. Anything else,
// including runtime errors from a broken Sequence, is re-raised.
type OrientationError struct {
	error
}

// Panic with an OrientationError.
func fatalf(format string, args ...interface{}) {
	panic(OrientationError{errors.Errorf(format, args...)})
}

func HandleOrientationPanicRecover(r interface{}) error {
	if r != nil {
		if orientationError, ok := r.(OrientationError); ok {
			return orientationError.error
		}
		panic(r)
	}
	return nil
}
