package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Chain renders the whole chain head-first as "[kind] message" segments
// joined by " -> ". Foreign nodes render their Error() text under the
// generic "error" label.
func (e *Error) Chain() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder

	for i, node := range e.Unwind() {
		if i > 0 {
			b.WriteString(" -> ")
		}

		if n, ok := node.(*Error); ok {
			fmt.Fprintf(&b, "[%s] %s", n.display, n.message)
			continue
		}

		fmt.Fprintf(&b, "[error] %s", node.Error())
	}

	return b.String()
}

// FullStack aggregates the captured traces of every node, head-first, with
// each cause introduced by a "Caused by: " marker:
//
//	[AppError] failed to load user profile
//		at ...
//	Caused by: [DatabaseError] SELECT: Connection refused
//		at ...
func (e *Error) FullStack() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder

	for i, node := range e.Unwind() {
		if i > 0 {
			b.WriteString("\nCaused by: ")
		}

		if n, ok := node.(*Error); ok {
			fmt.Fprintf(&b, "[%s] %s", n.display, n.stack)
			continue
		}

		fmt.Fprintf(&b, "[error] %s", node.Error())
	}

	return b.String()
}

// JSONError is the wire shape of a serialized chain. The field set and the
// recursive cause layout are a stability surface consumed by logging and
// observability pipelines; do not rename or drop fields.
type JSONError struct {
	Kind          string     `json:"kind"`
	DisplayName   string     `json:"displayName"`
	Message       string     `json:"message"`
	CapturedTrace string     `json:"capturedTrace,omitempty"`
	Cause         *JSONError `json:"cause,omitempty"`
}

// ToJSON converts the chain to its serializable form. Depth and kind order
// match Unwind exactly; foreign causes appear as UnexpectedError records
// without a trace.
func (e *Error) ToJSON() *JSONError {
	if e == nil {
		return nil
	}

	return &JSONError{
		Kind:          string(e.kind),
		DisplayName:   e.display,
		Message:       e.message,
		CapturedTrace: e.stack,
		Cause:         causeJSON(e.cause),
	}
}

func causeJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		return e.ToJSON()
	}

	return &JSONError{
		Kind:        string(KindUnexpected),
		DisplayName: string(KindUnexpected),
		Message:     err.Error(),
		Cause:       causeJSON(errors.Unwrap(err)),
	}
}

// MarshalJSON implements json.Marshaler over the ToJSON shape.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.ToJSON())
}
