// Package document is the record layer consuming composed schemas: it
// builds validated records from plain maps and enforces schema flexibility.
//
//	def, _ := schema.Compose(schema.New("user").
//		Field("name", &field.StringField{NonEmpty: true, Core: field.Core{Required: true}}).
//		Field("age", &field.IntField{Bounds: field.Bounds{Min: 0}}).
//		Strict())
//
//	doc, err := document.New(def, map[string]any{"name": "ada", "age": 36})
//
// Construction resolves defaults for absent fields, validates every given
// value through its descriptor, and rejects undeclared keys when the
// definition is strict. Assignments through Set revalidate the same way.
//
// Nested records are declared with Embedded, which builds sub-records
// recursively from nested maps. Large inputs can be validated concurrently
// with NewBatch.
package document
