package apperror

// Option configures an Error during construction.
type Option func(*Error)

// WithCause links the next node of the chain. The cause may be any error;
// foreign errors remain walkable through their own Unwrap.
func WithCause(cause error) Option { return func(e *Error) { e.cause = cause } }

// WithDisplayName overrides the human-facing label (defaults to the kind's
// string form).
func WithDisplayName(name string) Option { return func(e *Error) { e.display = name } }

// WithField sets a single key/value in the variant field bag.
func WithField(k string, v any) Option {
	return func(e *Error) {
		if e.fields == nil {
			e.fields = map[string]any{}
		}

		e.fields[k] = v
	}
}

// WithFields merges the provided map into the variant field bag.
// Nil or empty maps are ignored. Existing keys are overwritten.
// The provided map is defensively cloned.
func WithFields(m map[string]any) Option {
	return func(e *Error) {
		if len(m) == 0 {
			return
		}

		if e.fields == nil {
			e.fields = make(map[string]any, len(m))
		}

		for k, v := range cloneFields(m) {
			e.fields[k] = v
		}
	}
}
