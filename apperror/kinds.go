package apperror

import (
	"fmt"
	"time"
)

// Built-in kinds. The set is closed: Wrap is the only producer of KindApp,
// and FromUnknown falls back to KindUnexpected for anything it cannot
// recognize. User-defined kinds are minted through Factory.
const (
	KindNotFound   Kind = "NotFoundError"
	KindValidation Kind = "ValidationError"
	KindDatabase   Kind = "DatabaseError"
	KindNetwork    Kind = "NetworkError"
	KindPermission Kind = "PermissionError"
	KindTimeout    Kind = "TimeoutError"
	KindConflict   Kind = "ConflictError"
	KindUnexpected Kind = "UnexpectedError"

	// KindApp is the generic context kind: wrapping always means "add
	// context", never "reclassify", so every Wrap head carries it.
	KindApp Kind = "AppError"
)

// NotFound reports a missing resource, e.g. NotFound("User", "123") renders
// "User with id '123' not found". Pass an empty id when the resource has no
// identifier.
func NotFound(resource, id string, opts ...Option) *Error {
	msg := fmt.Sprintf("%s not found", resource)
	fields := map[string]any{"resource": resource}

	if id != "" {
		msg = fmt.Sprintf("%s with id '%s' not found", resource, id)
		fields["id"] = id
	}

	return newError(1, KindNotFound, msg, fields, opts...)
}

// Validation reports a failed input check on a single field.
func Validation(field, reason string, opts ...Option) *Error {
	return newError(1, KindValidation,
		fmt.Sprintf("validation failed on '%s': %s", field, reason),
		map[string]any{"field": field, "reason": reason},
		opts...)
}

// Database reports a failed storage operation, e.g.
// Database("SELECT", "Connection refused").
func Database(operation, detail string, opts ...Option) *Error {
	return newError(1, KindDatabase,
		fmt.Sprintf("%s: %s", operation, detail),
		map[string]any{"operation": operation},
		opts...)
}

// Network reports a failed remote call. statusCode <= 0 means no response
// status was observed.
func Network(url string, statusCode int, opts ...Option) *Error {
	msg := fmt.Sprintf("request to %s failed", url)
	fields := map[string]any{"url": url}

	if statusCode > 0 {
		msg = fmt.Sprintf("request to %s failed with status %d", url, statusCode)
		fields["status_code"] = statusCode
	}

	return newError(1, KindNetwork, msg, fields, opts...)
}

// Permission reports a denied action. resource may be empty when the action
// is not resource-scoped.
func Permission(action, resource string, opts ...Option) *Error {
	msg := fmt.Sprintf("not allowed to %s", action)
	fields := map[string]any{"action": action}

	if resource != "" {
		msg = fmt.Sprintf("not allowed to %s %s", action, resource)
		fields["resource"] = resource
	}

	return newError(1, KindPermission, msg, fields, opts...)
}

// Timeout records that an operation exceeded its deadline elsewhere; it is a
// data representation, not an enforcement mechanism.
func Timeout(operation string, timeout time.Duration, opts ...Option) *Error {
	return newError(1, KindTimeout,
		fmt.Sprintf("%s timed out after %s", operation, timeout),
		map[string]any{"operation": operation, "timeout_ms": timeout.Milliseconds()},
		opts...)
}

// Conflict reports a state collision on a resource.
func Conflict(resource string, opts ...Option) *Error {
	return newError(1, KindConflict,
		fmt.Sprintf("conflict on %s", resource),
		map[string]any{"resource": resource},
		opts...)
}

// Unexpected wraps an unclassified failure message.
func Unexpected(message string, opts ...Option) *Error {
	return newError(1, KindUnexpected, message, nil, opts...)
}

// Factory mints a constructor for a user-defined kind. render builds the
// message from the property bag; it receives a clone, so it cannot mutate
// the node's state.
//
//	payment := apperror.Factory("PaymentError", func(f map[string]any) string {
//		return fmt.Sprintf("payment %v declined", f["payment_id"])
//	})
//	err := payment(map[string]any{"payment_id": "p-42"})
func Factory(kind Kind, render func(fields map[string]any) string) func(fields map[string]any, opts ...Option) *Error {
	return func(fields map[string]any, opts ...Option) *Error {
		return newError(1, kind, render(cloneFields(fields)), fields, opts...)
	}
}
