package field

import (
	"fmt"

	"github.com/moengage/p2ee"
	"github.com/moengage/p2ee/enumset"
)

// EnumField validates values against a named enum set. The canonical
// representation is the member's canonical string.
//
// A string is resolved through the set case-insensitively, so "SYN" and
// "syn" both normalize to the registered spelling. Values implementing
// fmt.Stringer are resolved through their string form, which lets typed enum
// constants pass directly. Choices default to the full member set; declaring
// Choices narrows the allowed members further.
type EnumField struct {
	Core

	// Set is the enum set this field validates against.
	Set *enumset.Set
}

// Kind returns the descriptor's display name.
func (f *EnumField) Kind() string {
	if f.Set != nil {
		return "EnumField(" + f.Set.Name() + ")"
	}
	return "EnumField"
}

// Validate resolves the value through the enum set.
func (f *EnumField) Validate(value any) (any, error) {
	if f.Set == nil {
		return nil, p2ee.NewDefinitionError(f.FieldName, "enum field must be declared with a member set")
	}
	if value == nil {
		return nil, f.checkNil()
	}
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	default:
		return nil, f.typeFail(value, "string")
	}
	canonical, ok := f.Set.Resolve(s)
	if !ok {
		return nil, f.fail(value, fmt.Sprintf("enum does not allow value %q, allowed values: %v", s, f.Set.Values()))
	}
	if err := f.checkChoices(canonical); err != nil {
		return nil, err
	}
	return canonical, nil
}
