package schema

import (
	"fmt"

	"github.com/moengage/p2ee"
	"github.com/moengage/p2ee/field"
)

// Builder collects a record type's own field declarations before
// composition. It supports builder pattern methods for easy construction:
//
//	b := schema.New("user").
//		Field("name", &field.StringField{NonEmpty: true}).
//		Field("age", &field.IntField{}).
//		Strict().
//		Extends(parent)
//
// Build (or Registry.Compose) turns the collected declarations into an
// immutable Definition.
type Builder struct {
	name     string
	order    []string
	fields   map[string]field.Field
	strict   bool
	parent   *Definition
	buildErr error
}

// New creates a Builder for the record type with the given name.
func New(name string) *Builder {
	return &Builder{
		name:   name,
		fields: make(map[string]field.Field),
	}
}

// Field declares a field under the given name and returns the builder for
// method chaining. Declaring a nil descriptor, an empty name, or the same
// name twice makes the eventual Build fail with a definition error.
func (b *Builder) Field(name string, f field.Field) *Builder {
	if b.buildErr != nil {
		return b
	}
	switch {
	case name == "":
		b.buildErr = p2ee.NewDefinitionError(b.name, "field declared with an empty name")
	case f == nil:
		b.buildErr = p2ee.NewDefinitionError(name, "field declaration must be a field instance")
	default:
		if _, dup := b.fields[name]; dup {
			b.buildErr = p2ee.NewDefinitionError(name, "field declared twice")
			return b
		}
		b.fields[name] = f
		b.order = append(b.order, name)
	}
	return b
}

// Strict disables schema flexibility for this type: values for undeclared
// field names are rejected by the record layer. Schemas are flexible unless
// explicitly made strict.
func (b *Builder) Strict() *Builder {
	b.strict = true
	return b
}

// Extends sets the parent definition whose fields are inherited. A nil
// parent is tolerated and treated as empty.
func (b *Builder) Extends(parent *Definition) *Builder {
	b.parent = parent
	return b
}

// Name returns the record type name the builder was created with.
func (b *Builder) Name() string { return b.name }

// Build composes the declared fields with the inherited ones into an
// immutable Definition:
//
//   - every declared descriptor is bound to its declaration name
//     (write-once: an already-named descriptor keeps its first name);
//   - inherited field names not declared on this type are copied in, own
//     declarations always win over same-named inherited fields;
//   - the flexibility flag is the type's own flag ANDed with the parent's
//     computed flag (absent parent implies flexible).
//
// Build is a pure function over (own declarations, parent definition); use
// a Registry to guarantee at-most-once composition per type.
func (b *Builder) Build() (*Definition, error) {
	if b.buildErr != nil {
		return nil, b.buildErr
	}
	if b.name == "" {
		return nil, p2ee.NewDefinitionError("", "record type must have a name")
	}

	d := &Definition{
		name:     b.name,
		fields:   make(map[string]field.Field, len(b.fields)),
		flexible: !b.strict,
	}
	for _, name := range b.order {
		f := b.fields[name]
		f.Bind(name)
		d.fields[name] = f
		d.order = append(d.order, name)
	}
	if b.parent != nil {
		for _, name := range b.parent.order {
			if _, own := d.fields[name]; own {
				continue
			}
			d.fields[name] = b.parent.fields[name]
			d.order = append(d.order, name)
		}
		d.flexible = d.flexible && b.parent.flexible
	}
	for _, name := range d.order {
		if d.fields[name].Name() == "" {
			return nil, p2ee.NewDefinitionError(name, fmt.Sprintf("field %q has no bound name after composition", name))
		}
	}
	return d, nil
}

// Definition is the composed, immutable schema of one record type: an
// ordered mapping from field name to descriptor, plus the flexibility flag.
// A Definition is shared read-only across all records of its type and,
// transitively, across subtypes that do not redeclare a field.
type Definition struct {
	name     string
	order    []string
	fields   map[string]field.Field
	flexible bool
}

// Name returns the record type name.
func (d *Definition) Name() string { return d.name }

// Flexible reports whether values for undeclared field names are tolerated.
func (d *Definition) Flexible() bool { return d.flexible }

// Len returns the number of composed fields.
func (d *Definition) Len() int { return len(d.order) }

// FieldNames returns the composed field names in declaration order: the
// type's own declarations first, then inherited fields.
func (d *Definition) FieldNames() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Field returns the descriptor composed under the given name, or nil.
func (d *Definition) Field(name string) field.Field {
	return d.fields[name]
}
