package p2ee

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three failure categories of the validation engine.
// These can be used with errors.Is() to classify any error returned by the
// field, schema, or document packages.
var (
	// ErrInvalidValue indicates a value failed coercion or one of the
	// post-coercion checks (required, choices, bounds, length, pattern,
	// cardinality).
	ErrInvalidValue = errors.New("invalid field value")

	// ErrInvalidField indicates a field name is missing where required, or
	// present where the owning schema does not allow it.
	ErrInvalidField = errors.New("invalid field")

	// ErrInvalidDefinition indicates the field declaration itself is
	// malformed, or a union-typed container exhausted every candidate
	// validator for an element.
	ErrInvalidDefinition = errors.New("invalid field definition")
)

// Error kinds categorize errors by failure category.
const (
	// KindValue marks errors raised by the per-value validation pipeline.
	KindValue = "value"

	// KindField marks errors about a field's presence or absence.
	KindField = "field"

	// KindDefinition marks errors about the declaration itself.
	KindDefinition = "definition"
)

// Error is the structured error type used throughout the engine. It carries
// the field name (when applicable), the rejected value, and a human-readable
// reason.
//
// Error supports errors.Is() and errors.As(): unwrapping yields the sentinel
// for its kind, so callers can classify without inspecting fields:
//
//	_, err := f.Validate(v)
//	if errors.Is(err, p2ee.ErrInvalidValue) { ... }
type Error struct {
	// Kind categorizes the error (KindValue, KindField, KindDefinition).
	Kind string

	// Field is the name of the field involved, if known.
	Field string

	// Value is the rejected value. Only meaningful for KindValue.
	Value any

	// Reason describes the specific rule that was violated.
	Reason string

	// Missing distinguishes a missing field from a disallowed one.
	// Only meaningful for KindField.
	Missing bool

	// Err is the sentinel for this error's kind.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindValue:
		if e.Field != "" {
			return fmt.Sprintf("p2ee: %s: %s: %#v", e.Field, e.Reason, e.Value)
		}
		return fmt.Sprintf("p2ee: %s: %#v", e.Reason, e.Value)
	case KindField:
		reason := e.Reason
		if reason == "" {
			if e.Missing {
				reason = "missing field"
			} else {
				reason = "field is not allowed"
			}
		}
		if e.Field != "" {
			return fmt.Sprintf("p2ee: %s: %s", e.Field, reason)
		}
		return "p2ee: " + reason
	default:
		if e.Field != "" {
			return fmt.Sprintf("p2ee: %s: invalid definition: %s", e.Field, e.Reason)
		}
		return "p2ee: invalid definition: " + e.Reason
	}
}

// Unwrap returns the sentinel error for this error's kind, allowing
// errors.Is() to classify wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by kind (and field, when the target names one),
// and otherwise delegates to the sentinel.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Field == "" || e.Field == t.Field {
				return true
			}
		}
		return false
	}
	return errors.Is(e.Err, target)
}

// NewValueError creates an Error with KindValue carrying the field name, the
// rejected value, and the violated rule.
func NewValueError(field string, value any, reason string) *Error {
	return &Error{
		Kind:   KindValue,
		Field:  field,
		Value:  value,
		Reason: reason,
		Err:    ErrInvalidValue,
	}
}

// NewFieldError creates an Error with KindField. missing selects between the
// "missing field" and "field is not allowed" conditions.
func NewFieldError(field string, missing bool) *Error {
	return &Error{
		Kind:    KindField,
		Field:   field,
		Missing: missing,
		Err:     ErrInvalidField,
	}
}

// NewDefinitionError creates an Error with KindDefinition describing a
// malformed declaration, or a union-typed validator that exhausted all of
// its candidates.
func NewDefinitionError(field string, reason string) *Error {
	return &Error{
		Kind:   KindDefinition,
		Field:  field,
		Reason: reason,
		Err:    ErrInvalidDefinition,
	}
}
