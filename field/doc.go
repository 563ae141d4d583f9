// Package field implements the field-type hierarchy and the per-value
// validation pipeline of the p2ee engine.
//
// A field descriptor describes one named, typed slot in a record. Every
// descriptor runs the same pipeline when a value is validated:
//
//  1. type coercion: the input is converted to the field's canonical
//     representation, or rejected (numeric widening and narrowing, string to
//     timestamp parsing, string to id parsing, enum resolution).
//  2. required check: a nil value is rejected if the field is required.
//  3. choices check: the coerced value must be a member of the declared
//     choice set, if one is given.
//  4. type-specific checks: length, pattern, bounds, cardinality.
//
// Descriptors are configured as struct literals:
//
//	age := &field.IntField{
//		Core:   field.Core{Required: true},
//		Bounds: field.Bounds{Min: 0, Max: 150},
//	}
//	tags := &field.ListField{Validator: &field.StringField{NonEmpty: true}, MaxItems: 16}
//
// Defaults and bounds may be lazy producers (func() any), re-evaluated on
// every resolution:
//
//	expires := &field.DateTimeField{
//		Bounds: field.Bounds{Min: func() any { return time.Now().UTC() }},
//	}
//
// Every failure is a *p2ee.Error: a value error for rejected inputs, a
// definition error for malformed declarations — including the union-typed
// MultiListField exhausting all of its candidate validators.
package field
