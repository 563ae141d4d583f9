// Package p2ee is a document field declaration and validation engine.
//
// Callers declare document-like records as sets of typed, named fields. Any
// value assigned to such a field either conforms to the declared type and
// constraints, or is rejected with a precise, structured error.
//
// The module is organized as follows:
//
//   - field: the field-type hierarchy and the per-value validation pipeline
//     (type coercion, required/choices/bounds checks, container element
//     revalidation, first-match-wins union validators).
//   - schema: composition of class-level field declarations plus inherited
//     declarations into one merged, immutable schema definition.
//   - document: the record layer consuming the composed schema — building
//     records from maps, typed access, and schema-flexibility enforcement.
//   - enumset: named string-enum sets backing enum-typed fields.
//   - pool: a bounded worker pool for concurrent batch work.
//   - logging: context-carrying structured logging.
//
// The root package defines the shared error taxonomy. Every failure surfaced
// by the engine is one of three kinds: an invalid value, an invalid field
// (missing or disallowed), or an invalid definition. See Error.
//
// # Declaring and validating
//
//	name := &field.StringField{MaxLength: field.IntPtr(64)}
//	age := &field.IntField{Bounds: field.Bounds{Min: 0}}
//
//	def, err := schema.Compose(schema.New("user").
//		Field("name", name).
//		Field("age", age).
//		Strict())
//	if err != nil { ... }
//
//	doc, err := document.New(def, map[string]any{"name": "ada", "age": 36})
//
// Validation is stateless and reentrant: descriptors are read-only after
// construction, and composed definitions are immutable, so concurrent
// validation against shared descriptors needs no synchronization.
package p2ee
