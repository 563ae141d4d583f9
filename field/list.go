package field

import (
	"errors"
	"fmt"
	"strings"

	"github.com/moengage/p2ee"
)

// MultiListField validates lists whose elements may be one of several types.
// The canonical representation is []any.
//
// Each element is tried against the candidate validators in declared order;
// the first candidate that accepts the element wins and its normalized
// output is kept. An element no candidate accepts fails the whole field with
// a definition error enumerating every attempted candidate — this is the
// union-type "no variant matched" case, deliberately distinct from a plain
// type mismatch.
type MultiListField struct {
	Core

	// Validators are the candidate element validators, tried in order.
	Validators []Field

	// MaxItems caps the number of elements. Zero means unlimited.
	MaxItems int
}

// Kind returns the descriptor's display name.
func (f *MultiListField) Kind() string { return "MultiListField" }

// ResolveDefault resolves the declared default, falling back to an empty
// list.
func (f *MultiListField) ResolveDefault() (any, error) {
	if f.Default == nil {
		return []any{}, nil
	}
	return f.Core.ResolveDefault()
}

// Validate checks that the value is a slice or array and resolves every
// element through the candidate validators.
func (f *MultiListField) Validate(value any) (any, error) {
	if value == nil {
		return nil, f.checkNil()
	}
	items, ok := toSlice(value)
	if !ok {
		return nil, f.typeFail(value, "slice")
	}
	out := make([]any, 0, len(items))
	if len(f.Validators) > 0 {
		for _, item := range items {
			normalized, err := f.resolveElement(item)
			if err != nil {
				return nil, err
			}
			out = append(out, normalized)
		}
	} else {
		out = append(out, items...)
	}
	if f.MaxItems > 0 && len(out) > f.MaxItems {
		return nil, f.fail(len(out), fmt.Sprintf("too many items in list, max allowed: %d", f.MaxItems))
	}
	if err := f.checkChoices(out); err != nil {
		return nil, err
	}
	return out, nil
}

// resolveElement tries the candidate validators in declared order,
// first match wins.
func (f *MultiListField) resolveElement(item any) (any, error) {
	var attempted []string
	for _, candidate := range f.Validators {
		if candidate == nil {
			return nil, p2ee.NewDefinitionError(f.FieldName, "element validator must be a field instance")
		}
		normalized, err := candidate.Validate(item)
		if err == nil {
			return normalized, nil
		}
		if !errors.Is(err, p2ee.ErrInvalidValue) {
			// Definition errors indicate a broken declaration, not a
			// mismatched variant. Stop probing.
			return nil, err
		}
		attempted = append(attempted, candidate.Kind())
	}
	return nil, p2ee.NewDefinitionError(f.FieldName,
		"value must be one of the permitted types: "+strings.Join(attempted, ", "))
}

// ListField validates lists with at most one element validator. The
// canonical representation is []any.
//
// Unlike MultiListField, an element rejected by the single validator
// propagates that validator's value error directly, annotated with the
// element index.
type ListField struct {
	Core

	// Validator revalidates every element when set.
	Validator Field

	// MaxItems caps the number of elements. Zero means unlimited.
	MaxItems int
}

// Kind returns the descriptor's display name.
func (f *ListField) Kind() string { return "ListField" }

// ResolveDefault resolves the declared default, falling back to an empty
// list.
func (f *ListField) ResolveDefault() (any, error) {
	if f.Default == nil {
		return []any{}, nil
	}
	return f.Core.ResolveDefault()
}

// Validate checks that the value is a slice or array and revalidates every
// element through the element validator.
func (f *ListField) Validate(value any) (any, error) {
	if value == nil {
		return nil, f.checkNil()
	}
	items, ok := toSlice(value)
	if !ok {
		return nil, f.typeFail(value, "slice")
	}
	out := make([]any, 0, len(items))
	for i, item := range items {
		if f.Validator == nil {
			out = append(out, item)
			continue
		}
		normalized, err := f.Validator.Validate(item)
		if err != nil {
			if errors.Is(err, p2ee.ErrInvalidDefinition) {
				return nil, err
			}
			return nil, &p2ee.Error{
				Kind:   p2ee.KindValue,
				Field:  f.FieldName,
				Value:  item,
				Reason: fmt.Sprintf("item %d failed validation", i),
				Err:    err,
			}
		}
		out = append(out, normalized)
	}
	if f.MaxItems > 0 && len(out) > f.MaxItems {
		return nil, f.fail(len(out), fmt.Sprintf("too many items in list, max allowed: %d", f.MaxItems))
	}
	if err := f.checkChoices(out); err != nil {
		return nil, err
	}
	return out, nil
}
