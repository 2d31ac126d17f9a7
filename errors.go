// errors.go - descriptive errors for scandir
//
// (c) 2024- Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package scandir

import (
	"errors"
	"fmt"
)

// Error represents a fatal, configuration-level failure returned by
// Count, Walk or Scandir when a task cannot be set up (unsupported
// ReturnType, unreachable root). Non-fatal per-entry failures never take this
// shape - they are recorded as plain strings in Statistics.Errors and
// Toc.Errors.
type Error struct {
	Op   string
	Path string
	Err  error
}

// Error returns a string representation of Error.
func (e *Error) Error() string {
	return fmt.Sprintf("scandir: %s '%s': %s", e.Op, e.Path, e.Err.Error())
}

// Unwrap returns the underlying wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

var _ error = &Error{}

// ErrInvalidReturnType is wrapped in the *Error that Count, Walk or
// Scandir return when given a ReturnType they don't support (e.g. Scandir
// with ReturnWalk).
var ErrInvalidReturnType = errors.New("Parameter return_type has invalid value")

// ErrNotFresh is returned by Start() when called on a task that has
// already been started.
var ErrNotFresh = errors.New("task is not in the Fresh state")

// entryError records a non-fatal, per-entry failure as the
// "<path>: <reason>" string spec'd for Statistics.Errors/Toc.Errors.
func entryError(path string, err error) string {
	return fmt.Sprintf("%s: %s", path, err.Error())
}
