package apperror

import (
	"errors"
	"fmt"
)

// Wrap produces a new context head: a KindApp node carrying message with err
// as its cause. The wrapped value is never mutated, so repeated wrapping
// strictly grows the chain. A nil err still yields a usable single-node
// chain.
func Wrap(err error, message string) *Error {
	return newError(1, KindApp, message, nil, WithCause(err))
}

// Wrap returns a new context head over e. See the package-level Wrap.
func (e *Error) Wrap(message string) *Error {
	return newError(1, KindApp, message, nil, WithCause(e))
}

// FromUnknown converts any recovered or returned value to *Error.
//
// Behavior:
//   - *Error => returned as-is (same pointer, not a copy)
//   - error  => a KindUnexpected node carrying its message; a cause exposed
//     via Unwrap is preserved by recursive conversion
//   - anything else => a KindUnexpected node with the value's string form
//
// The conversion is total: every possible panic or error value becomes a
// well-typed node.
func FromUnknown(v any) *Error {
	switch x := v.(type) {
	case *Error:
		return x
	case error:
		var opts []Option
		if cause := errors.Unwrap(x); cause != nil {
			opts = append(opts, WithCause(FromUnknown(cause)))
		}

		return newError(1, KindUnexpected, x.Error(), nil, opts...)
	default:
		return newError(1, KindUnexpected, fmt.Sprint(v), nil)
	}
}
