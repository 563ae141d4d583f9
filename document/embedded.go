package document

import (
	"github.com/moengage/p2ee/field"
	"github.com/moengage/p2ee/schema"
)

// Embedded returns a field descriptor for a nested record of the given
// definition. The field accepts an already-built *Document of that
// definition, or a map[string]any from which a sub-record is built by
// recursive construction.
//
//	address, _ := schema.Compose(schema.New("address").
//		Field("city", &field.StringField{NonEmpty: true}).
//		Field("zip", &field.StringField{Pattern: `\d{5}`}))
//
//	user := schema.New("user").
//		Field("home", document.Embedded(address))
func Embedded(def *schema.Definition) *field.EmbeddedField {
	f := &field.EmbeddedField{}
	if def == nil {
		return f
	}
	f.TypeName = def.Name()
	f.Build = func(values map[string]any) (any, error) {
		return New(def, values)
	}
	f.Accepts = func(v any) bool {
		d, ok := v.(*Document)
		return ok && d.def == def
	}
	return f
}
