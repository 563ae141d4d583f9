package field

import (
	"fmt"
	"math"

	"github.com/moengage/p2ee"
)

// IntField validates integer values. The canonical representation is int64.
//
// All Go integer widths are accepted. Floats are narrowed when their value is
// integral; a float with a fractional part is rejected. Values that do not
// fit in int64 fail validation rather than wrapping.
type IntField struct {
	Core
	Bounds
}

// Kind returns the descriptor's display name.
func (f *IntField) Kind() string { return "IntField" }

// ResolveDefault resolves the declared default, falling back to 0.
func (f *IntField) ResolveDefault() (any, error) {
	if f.Default == nil {
		return int64(0), nil
	}
	return f.Core.ResolveDefault()
}

// Validate coerces the value to int64 and applies the bounds check.
func (f *IntField) Validate(value any) (any, error) {
	if value == nil {
		return nil, f.checkNil()
	}
	n, err := f.coerce(value)
	if err != nil {
		return nil, err
	}
	if err := f.checkChoices(n); err != nil {
		return nil, err
	}
	if min := f.MinValue(); min != nil {
		m, ok := asInt64(min)
		if !ok {
			return nil, p2ee.NewDefinitionError(f.FieldName, fmt.Sprintf("min bound %v is not an integer", min))
		}
		if n < m {
			return nil, f.fail(value, fmt.Sprintf("value is less than min value: %d", m))
		}
	}
	if max := f.MaxValue(); max != nil {
		m, ok := asInt64(max)
		if !ok {
			return nil, p2ee.NewDefinitionError(f.FieldName, fmt.Sprintf("max bound %v is not an integer", max))
		}
		if n > m {
			return nil, f.fail(value, fmt.Sprintf("value is greater than max value: %d", m))
		}
	}
	return n, nil
}

func (f *IntField) coerce(value any) (int64, error) {
	if n, ok := asInt64(value); ok {
		return n, nil
	}
	switch v := value.(type) {
	case uint, uint64:
		return 0, f.fail(value, "integer value overflows int64")
	case float32, float64:
		fv, _ := asFloat64(v)
		if fv != math.Trunc(fv) || math.IsInf(fv, 0) || math.IsNaN(fv) {
			return 0, f.fail(value, "float value is not integral")
		}
		if fv < math.MinInt64 || fv >= math.MaxInt64 {
			return 0, f.fail(value, "integer value overflows int64")
		}
		return int64(fv), nil
	}
	return 0, f.typeFail(value, "integer")
}

// FloatField validates floating point values. The canonical representation
// is float64. Integer values of any width are widened.
type FloatField struct {
	Core
	Bounds
}

// Kind returns the descriptor's display name.
func (f *FloatField) Kind() string { return "FloatField" }

// Validate coerces the value to float64 and applies the bounds check.
func (f *FloatField) Validate(value any) (any, error) {
	if value == nil {
		return nil, f.checkNil()
	}
	n, ok := asFloat64(value)
	if !ok {
		return nil, f.typeFail(value, "float")
	}
	if err := f.checkChoices(n); err != nil {
		return nil, err
	}
	if min := f.MinValue(); min != nil {
		m, ok := asFloat64(min)
		if !ok {
			return nil, p2ee.NewDefinitionError(f.FieldName, fmt.Sprintf("min bound %v is not numeric", min))
		}
		if n < m {
			return nil, f.fail(value, fmt.Sprintf("value is less than min value: %v", m))
		}
	}
	if max := f.MaxValue(); max != nil {
		m, ok := asFloat64(max)
		if !ok {
			return nil, p2ee.NewDefinitionError(f.FieldName, fmt.Sprintf("max bound %v is not numeric", max))
		}
		if n > m {
			return nil, f.fail(value, fmt.Sprintf("value is greater than max value: %v", m))
		}
	}
	return n, nil
}

// BoolField validates boolean values. No coercion is performed.
type BoolField struct {
	Core
}

// Kind returns the descriptor's display name.
func (f *BoolField) Kind() string { return "BoolField" }

// ResolveDefault resolves the declared default, falling back to false.
func (f *BoolField) ResolveDefault() (any, error) {
	if f.Default == nil {
		return false, nil
	}
	return f.Core.ResolveDefault()
}

// Validate checks that the value is a bool.
func (f *BoolField) Validate(value any) (any, error) {
	if value == nil {
		return nil, f.checkNil()
	}
	b, ok := value.(bool)
	if !ok {
		return nil, f.typeFail(value, "bool")
	}
	if err := f.checkChoices(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ObjectField accepts any value unchanged. It exists for slots that carry
// opaque payloads while still participating in required and choices checks.
type ObjectField struct {
	Core
}

// Kind returns the descriptor's display name.
func (f *ObjectField) Kind() string { return "ObjectField" }

// Validate applies only the required and choices checks.
func (f *ObjectField) Validate(value any) (any, error) {
	if value == nil {
		return nil, f.checkNil()
	}
	if err := f.checkChoices(value); err != nil {
		return nil, err
	}
	return value, nil
}
