package apperror

import "errors"

// Is reports whether any node in err's chain is an *Error of the given kind.
// The walk follows Unwrap links head-first and also traverses foreign errors
// that expose a cause, so err need not be an *Error itself.
func Is(err error, kind Kind) bool {
	_, ok := As(err, kind)
	return ok
}

// As returns the first node in err's chain that is an *Error of the given
// kind. The returned pointer aliases the chain; it is not a copy.
func As(err error, kind Kind) (*Error, bool) {
	for err != nil {
		if e, ok := err.(*Error); ok && e.kind == kind {
			return e, true
		}

		err = errors.Unwrap(err)
	}

	return nil, false
}

// HasTag is the string form of Is for kinds with no shared constant, such as
// those minted dynamically through Factory.
func HasTag(err error, name string) bool {
	return Is(err, Kind(name))
}

// RootCause returns the deepest node of err's chain: the last value reachable
// by following Unwrap. It returns err itself when there is no cause, and nil
// for a nil err.
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}

		err = next
	}

	return nil
}

// RootCause returns the deepest node of e's chain.
func (e *Error) RootCause() error {
	if e == nil {
		return nil
	}

	return RootCause(e)
}

// Unwind flattens err's chain head-first: [err, cause, cause.cause, ...].
// The slice length equals the chain depth; a nil err yields nil.
func Unwind(err error) []error {
	var out []error

	for err != nil {
		out = append(out, err)
		err = errors.Unwrap(err)
	}

	return out
}

// Unwind flattens e's chain head-first.
func (e *Error) Unwind() []error {
	if e == nil {
		return nil
	}

	return Unwind(e)
}
