package field

import (
	"github.com/moengage/p2ee"
)

// EmbeddedField validates nested record values. It accepts an
// already-constructed record of the bound type, or builds one from a
// map[string]any of field name to value through the injected constructor.
//
// The field package knows nothing about record types; the record layer binds
// a concrete type by supplying Build, Accepts, and TypeName. See
// document.Embedded for the usual way to construct one.
type EmbeddedField struct {
	Core

	// TypeName names the record type, for candidate listings in union
	// validator errors.
	TypeName string

	// Build constructs a record of the bound type from a mapping.
	// Construction validates every field, so a Build failure is a value
	// error from the nested field that rejected its input.
	Build func(map[string]any) (any, error)

	// Accepts reports whether v is already a record of the bound type.
	Accepts func(v any) bool
}

// Kind returns the descriptor's display name, including the bound record
// type.
func (f *EmbeddedField) Kind() string {
	if f.TypeName != "" {
		return "EmbeddedField(" + f.TypeName + ")"
	}
	return "EmbeddedField"
}

// Validate accepts a record of the bound type, or builds one from a mapping.
func (f *EmbeddedField) Validate(value any) (any, error) {
	if f.Build == nil || f.Accepts == nil {
		return nil, p2ee.NewDefinitionError(f.FieldName, "embedded field must be bound to a record type")
	}
	if value == nil {
		return nil, f.checkNil()
	}
	v := value
	if m, ok := toStringMap(value); ok {
		built, err := f.Build(m)
		if err != nil {
			return nil, err
		}
		v = built
	}
	if !f.Accepts(v) {
		return nil, f.typeFail(value, f.Kind())
	}
	return v, nil
}
