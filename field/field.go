package field

import (
	"fmt"
	"math"
	"reflect"

	"github.com/moengage/p2ee"
)

// Field is the contract every field descriptor implements. A descriptor
// describes one named, typed slot in a record: how to resolve its default,
// and how to coerce and validate values assigned to it.
//
// Descriptors are created once, at type-declaration time, and are read-only
// afterwards except for the one-time name bind performed by schema
// composition. Validate never mutates descriptor state, so concurrent
// validation of different values against the same descriptor is safe.
type Field interface {
	// Name returns the name the field was bound under, or "" if unbound.
	Name() string

	// Bind sets the field name. It is write-once: once a name is set,
	// either explicitly or by schema composition, further calls are no-ops.
	Bind(name string)

	// Kind returns the descriptor's display name, used when a union-typed
	// container reports the candidates it attempted.
	Kind() string

	// IsRequired reports whether nil values are rejected.
	IsRequired() bool

	// ResolveDefault resolves the declared default, invoking it if it is a
	// producer. It fails with a value error if the field is required and
	// the default resolves to nil.
	ResolveDefault() (any, error)

	// Validate runs the full pipeline: type coercion, the required check,
	// the choices check, and any type-specific checks. On success it
	// returns the normalized value in the field's canonical representation.
	Validate(value any) (any, error)
}

// Core carries the configuration shared by every field type. Concrete field
// types embed it and layer their own coercion and checks on top.
type Core struct {
	// FieldName is the name under which the field was declared. Usually
	// left empty and bound by schema composition.
	FieldName string

	// Default is the default value for the field, used when a record is
	// built without a value for it. It may be a literal, or a func() any
	// invoked lazily on each resolution.
	Default any

	// Choices optionally restricts the field to a set of allowed values.
	// Membership is checked after coercion.
	Choices []any

	// Required rejects nil values when true.
	Required bool
}

// Name returns the bound field name.
func (c *Core) Name() string { return c.FieldName }

// Bind sets the field name if it has not been set yet. Binding an
// already-named descriptor is a no-op, so a descriptor shared between two
// record types keeps its first-assigned name.
func (c *Core) Bind(name string) {
	if c.FieldName == "" {
		c.FieldName = name
	}
}

// IsRequired reports whether nil values are rejected.
func (c *Core) IsRequired() bool { return c.Required }

// ResolveDefault resolves the declared default value.
func (c *Core) ResolveDefault() (any, error) {
	v := resolve(c.Default)
	if c.Required && v == nil {
		reason := "field is required but has no default"
		if c.Default != nil {
			reason = "field is required but default resolved to nil"
		}
		return nil, p2ee.NewValueError(c.FieldName, nil, reason)
	}
	return v, nil
}

// checkNil enforces the required check for a nil input.
func (c *Core) checkNil() error {
	if c.Required {
		return c.fail(nil, "value cannot be nil")
	}
	return nil
}

// checkChoices enforces membership in the allowed value set, if one is
// declared. Numeric choices are compared value-wise so that a coerced int64
// still matches an int literal in the choice list.
func (c *Core) checkChoices(v any) error {
	if c.Choices == nil {
		return nil
	}
	for _, choice := range c.Choices {
		if equalValue(v, choice) {
			return nil
		}
	}
	return c.fail(v, fmt.Sprintf("value must be one of the permitted values: %v", c.Choices))
}

// fail builds a value error naming this field.
func (c *Core) fail(value any, reason string) error {
	return p2ee.NewValueError(c.FieldName, value, reason)
}

// typeFail builds the generic coercion-failure error.
func (c *Core) typeFail(value any, want string) error {
	return c.fail(value, fmt.Sprintf("value must be of type %s, passed type %T", want, value))
}

// resolve unwraps lazy producers: a func() any is invoked, anything else is
// returned as-is.
func resolve(v any) any {
	if fn, ok := v.(func() any); ok {
		return fn()
	}
	return v
}

// asInt64 converts any Go integer type to int64. It reports failure for
// non-integers and for uint64 values that overflow int64.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), uint64(n) <= math.MaxInt64
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= math.MaxInt64
	}
	return 0, false
}

// asFloat64 converts any Go numeric type to float64.
func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	if n, ok := asInt64(v); ok {
		return float64(n), true
	}
	return 0, false
}

// equalValue compares a coerced value against a declared choice. Numbers are
// compared by value regardless of width; everything else falls back to deep
// equality.
func equalValue(a, b any) bool {
	fa, okA := asFloat64(a)
	fb, okB := asFloat64(b)
	if okA && okB {
		return fa == fb
	}
	return reflect.DeepEqual(a, b)
}

// toSlice normalizes any slice or array value into []any.
func toSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// IntPtr returns a pointer to n, for use in optional length constraints.
func IntPtr(n int) *int { return &n }

var (
	_ Field = (*StringField)(nil)
	_ Field = (*EmailField)(nil)
	_ Field = (*DBNameField)(nil)
	_ Field = (*IntField)(nil)
	_ Field = (*FloatField)(nil)
	_ Field = (*BoolField)(nil)
	_ Field = (*ObjectField)(nil)
	_ Field = (*DateTimeField)(nil)
	_ Field = (*ObjectIDField)(nil)
	_ Field = (*UUIDField)(nil)
	_ Field = (*EnumField)(nil)
	_ Field = (*ListField)(nil)
	_ Field = (*MultiListField)(nil)
	_ Field = (*DictField)(nil)
	_ Field = (*EmbeddedField)(nil)
	_ Field = (*ExprField)(nil)
)
