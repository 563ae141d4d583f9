package field

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/moengage/p2ee"
)

// DictField validates string-keyed mappings. The canonical representation is
// map[string]any.
//
// Any map with string keys is accepted. When key or value validators are
// declared, every key and value is independently revalidated and a new map
// is built from the normalized results. The key validator must normalize to
// a string. Choices are not supported on mappings and are ignored.
type DictField struct {
	Core

	// KeyValidator revalidates every key when set.
	KeyValidator Field

	// ValueValidator revalidates every value when set.
	ValueValidator Field
}

// Kind returns the descriptor's display name.
func (f *DictField) Kind() string { return "DictField" }

// ResolveDefault resolves the declared default, falling back to an empty
// map.
func (f *DictField) ResolveDefault() (any, error) {
	if f.Default == nil {
		return map[string]any{}, nil
	}
	return f.Core.ResolveDefault()
}

// Validate checks that the value is a string-keyed map and revalidates keys
// and values through the declared validators.
func (f *DictField) Validate(value any) (any, error) {
	if value == nil {
		return nil, f.checkNil()
	}
	m, ok := toStringMap(value)
	if !ok {
		return nil, f.typeFail(value, "map[string]any")
	}
	if f.KeyValidator == nil && f.ValueValidator == nil {
		return m, nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		key := k
		if f.KeyValidator != nil {
			normalized, err := f.KeyValidator.Validate(k)
			if err != nil {
				return nil, f.wrapEntry(k, "key", err)
			}
			s, ok := normalized.(string)
			if !ok {
				return nil, p2ee.NewDefinitionError(f.FieldName,
					fmt.Sprintf("key validator must normalize to string, got %T", normalized))
			}
			key = s
		}
		val := v
		if f.ValueValidator != nil {
			normalized, err := f.ValueValidator.Validate(v)
			if err != nil {
				return nil, f.wrapEntry(k, "value", err)
			}
			val = normalized
		}
		out[key] = val
	}
	return out, nil
}

func (f *DictField) wrapEntry(key, part string, err error) error {
	if errors.Is(err, p2ee.ErrInvalidDefinition) {
		return err
	}
	return &p2ee.Error{
		Kind:   p2ee.KindValue,
		Field:  f.FieldName,
		Value:  key,
		Reason: fmt.Sprintf("%s for entry %q failed validation", part, key),
		Err:    err,
	}
}

// toStringMap normalizes any string-keyed map into map[string]any.
func toStringMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
