// Package schema composes field declarations into immutable record schemas.
//
// Composition is an explicit two-step: declarations are collected into a
// Builder at type-definition time, then composed exactly once into a
// Definition — an ordered field-name to descriptor mapping plus the schema
// flexibility flag.
//
//	def, err := schema.Compose(schema.New("user").
//		Field("name", &field.StringField{NonEmpty: true}).
//		Field("age", &field.IntField{Bounds: field.Bounds{Min: 0}}).
//		Strict())
//
// # Inheritance
//
// A builder may extend an already-composed parent Definition. Fields
// declared on the child always win over same-named inherited fields; the
// child's flexibility flag is its own flag ANDed with the parent's, so one
// strict ancestor makes every descendant strict.
//
//	child, err := schema.Compose(schema.New("admin").
//		Field("scopes", &field.ListField{Validator: &field.StringField{}}).
//		Extends(def))
//
// # Concurrency
//
// Composition through a Registry is race-free under concurrent first use:
// double-checked locking ensures exactly one Definition per type name, with
// no partial schema ever observable. Composed Definitions are immutable and
// need no synchronization to read.
package schema
