// Package bridge converts text between UTF-8 and the host's native console
// representation.
//
// Two representations exist: UTF-8 itself, where every conversion is the
// identity, and the wide representation, carried here as UTF-16LE bytes.
// Wide conversions always run in two steps: the required output size is
// computed first, then the conversion is performed into a buffer of exactly
// that size. A converter that writes a different amount than it predicted
// is broken, and the bridge panics with *InconsistencyError instead of
// returning partial text.
package bridge

import (
	"errors"
	"fmt"
)

// Conversion directions, used in errors.
const (
	DirectionToUTF8   = "to-utf8"
	DirectionToNative = "to-native"
)

// ErrMalformed is wrapped by every conversion error caused by invalid input.
var ErrMalformed = errors.New("malformed input sequence")

// Bridge converts between the native representation and UTF-8.
// Conversions are all-or-nothing: on error the returned slice is nil.
type Bridge interface {
	// Name identifies the native representation (e.g. "utf-16le").
	Name() string
	// ToUTF8 converts native text to UTF-8.
	ToUTF8(native []byte) ([]byte, error)
	// ToNative converts UTF-8 text to the native representation.
	ToNative(text []byte) ([]byte, error)
}

// InconsistencyError reports a converter that wrote a different number of
// bytes than its own size query predicted. It is only ever panicked.
type InconsistencyError struct {
	Direction string
	Required  int
	Written   int
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("bridge: %s conversion wrote %d bytes, size query required %d",
		e.Direction, e.Written, e.Required)
}

// mustMatch panics when the predicted and actual output sizes differ.
// The size query and the conversion are assumed deterministic for the same
// input; concurrent mutation of the input between the two steps breaks that.
func mustMatch(direction string, required, written int) {
	if required != written {
		panic(&InconsistencyError{Direction: direction, Required: required, Written: written})
	}
}
