// Package contract exposes the minimal error interface used by other packages.
//
// Implementations must ensure Fields returns a defensive copy and support
// errors.Unwrap for proper interoperability with standard error helpers.
package contract

// Kind is the machine-facing discriminator identifying an error variant
// (e.g. "NotFoundError", "DatabaseError"). Built-in values are declared in
// the apperror package; callers may mint their own values for user-defined
// variants.
type Kind string

// String renders the kind as its wire/tag form.
func (k Kind) String() string { return string(k) }

// Error is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Keep every field immutable after construction.
//   - Ensure Fields() returns a defensive copy (never the internal map).
//   - Support errors.Unwrap via Unwrap().
//
// The interface intentionally contains only getters and Unwrap to keep
// the API surface minimal and transport-agnostic.
type Error interface {
	error
	Kind() Kind
	// DisplayName is the human-facing label; it defaults to the kind's
	// string form unless overridden at construction.
	DisplayName() string
	Message() string
	// Stack is a best-effort textual snapshot of the construction site;
	// empty when capture was unavailable.
	Stack() string
	// Fields returns a defensive copy; NEVER return the internal map directly.
	Fields() map[string]any
	Unwrap() error
}
