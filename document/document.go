package document

import (
	"github.com/moengage/p2ee"
	"github.com/moengage/p2ee/schema"
)

// Document is one record of a composed schema: a validated mapping from
// field name to value.
//
// Construction and assignment both run values through the schema's field
// descriptors, so a Document only ever holds normalized, validated values —
// or nil for fields that were never set and have no default.
type Document struct {
	def    *schema.Definition
	values map[string]any
}

// New builds a Document from a mapping of field name to value.
//
// Every declared field takes its value from the mapping, or its resolved
// default when absent. A nil value is stored without validation; anything
// else is validated and normalized by its descriptor. Keys not declared in
// the schema are stored as-is when the definition is flexible, and rejected
// with a field error when it is strict.
func New(def *schema.Definition, values map[string]any) (*Document, error) {
	if def == nil {
		return nil, p2ee.NewDefinitionError("", "document requires a composed definition")
	}
	d := &Document{
		def:    def,
		values: make(map[string]any, def.Len()),
	}
	for _, name := range def.FieldNames() {
		f := def.Field(name)
		val, given := values[name]
		if !given || val == nil {
			resolved, err := f.ResolveDefault()
			if err != nil {
				return nil, err
			}
			val = resolved
		}
		if val == nil {
			d.values[name] = nil
			continue
		}
		normalized, err := f.Validate(val)
		if err != nil {
			return nil, err
		}
		d.values[name] = normalized
	}
	for key, val := range values {
		if def.Field(key) != nil {
			continue
		}
		if !def.Flexible() {
			return nil, p2ee.NewFieldError(key, false)
		}
		d.values[key] = val
	}
	return d, nil
}

// Definition returns the schema this document was built against.
func (d *Document) Definition() *schema.Definition { return d.def }

// Get returns the value stored under name and whether the name is present.
func (d *Document) Get(name string) (any, bool) {
	v, ok := d.values[name]
	return v, ok
}

// Set validates value through the field declared under name and stores the
// normalized result. Setting an undeclared name fails with a field error
// when the definition is strict; when flexible, the value is stored as-is.
// Setting a declared name to nil clears the value if the field is not
// required.
func (d *Document) Set(name string, value any) error {
	f := d.def.Field(name)
	if f == nil {
		if !d.def.Flexible() {
			return p2ee.NewFieldError(name, false)
		}
		d.values[name] = value
		return nil
	}
	if value == nil {
		if f.IsRequired() {
			return p2ee.NewValueError(name, nil, "value cannot be nil")
		}
		d.values[name] = nil
		return nil
	}
	normalized, err := f.Validate(value)
	if err != nil {
		return err
	}
	d.values[name] = normalized
	return nil
}

// Pop removes and returns the value stored under name. It reports false if
// the name was not present.
func (d *Document) Pop(name string) (any, bool) {
	v, ok := d.values[name]
	if ok {
		delete(d.values, name)
	}
	return v, ok
}

// Update applies every entry of the mapping through Set, stopping at the
// first failure.
func (d *Document) Update(values map[string]any) error {
	for name, value := range values {
		if err := d.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

// Has reports whether a non-nil value is stored under name.
func (d *Document) Has(name string) bool {
	v, ok := d.values[name]
	return ok && v != nil
}

// Len returns the number of stored entries, including nil ones.
func (d *Document) Len() int { return len(d.values) }

// ToMap returns a shallow copy of the document's values with nil entries
// omitted.
func (d *Document) ToMap() map[string]any {
	out := make(map[string]any, len(d.values))
	for name, value := range d.values {
		if value == nil {
			continue
		}
		out[name] = value
	}
	return out
}

// Copy builds a new Document from this document's values overlaid with the
// given overrides. The copy revalidates everything, so overrides are checked
// the same way construction input is.
func (d *Document) Copy(overrides map[string]any) (*Document, error) {
	values := d.ToMap()
	for name, value := range overrides {
		values[name] = value
	}
	return New(d.def, values)
}
