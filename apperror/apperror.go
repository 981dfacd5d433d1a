package apperror

import (
	"fmt"

	"github.com/next-trace/scg-apperror/contract"
)

// Kind re-exports the discriminator type so most callers only import this
// package.
type Kind = contract.Kind

// Error is the canonical error node for SCG services.
//
// Fields:
//   - Kind:        stable, machine-facing variant tag (e.g. KindNotFound)
//   - DisplayName: human label, defaults to the kind's string form
//   - Message:     human-readable description, fixed at construction
//   - Fields:      variant-specific data (resource, id, operation, ...)
//   - cause:       optional link to the next node in the chain
//   - stack:       best-effort trace captured at construction
type Error struct {
	kind    Kind
	display string
	message string
	fields  map[string]any
	cause   error
	stack   string
}

// compile-time guarantee that *Error implements contract.Error
var _ contract.Error = (*Error)(nil)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	// Compact, dev-friendly string. Structured consumers should use the
	// derived views (Chain, FullStack, ToJSON) instead.
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}

	return e.message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// ------ contract.Error getters

func (e *Error) Kind() Kind {
	if e == nil {
		return ""
	}

	return e.kind
}

func (e *Error) DisplayName() string {
	if e == nil {
		return ""
	}

	return e.display
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}

	return e.message
}

func (e *Error) Stack() string {
	if e == nil {
		return ""
	}

	return e.stack
}

func (e *Error) Fields() map[string]any {
	if e == nil {
		return nil
	}

	return cloneFields(e.fields)
}

// ------ core constructor

// New creates a new Error with the provided kind, message and variant
// fields. Fields are defensively cloned (pass nil for none). The node is
// immutable once returned; a cause is attached via WithCause.
func New(kind Kind, message string, fields map[string]any, opts ...Option) *Error {
	return newError(1, kind, message, fields, opts...)
}

// newError is the shared construction path. skip counts the stack frames
// between the user's call site and captureStack.
func newError(skip int, kind Kind, message string, fields map[string]any, opts ...Option) *Error {
	e := &Error{
		kind:    kind,
		display: string(kind),
		message: message,
		fields:  cloneFields(fields),
	}
	for _, o := range opts {
		o(e)
	}

	// The snapshot mirrors the usual "message, then frames" layout so
	// FullStack segments read naturally.
	e.stack = message
	if frames := captureStack(skip + 1); frames != "" {
		e.stack += "\n" + frames
	}

	return e
}

func cloneFields(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]any, len(in))

	for k, v := range in {
		// Deep-clone nested maps with string keys to avoid leaking internal references.
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneFields(mv)
			continue
		}

		out[k] = v
	}

	return out
}
