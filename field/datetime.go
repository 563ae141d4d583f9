package field

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/moengage/p2ee"
)

// DateTimeField validates timestamps. The canonical representation is
// time.Time.
//
// Native time.Time values are accepted as-is. Strings are parsed with a
// permissive parser that recognizes most common formats. Unless KeepTimeZone
// is set, the parsed wall-clock time is reinterpreted in UTC, discarding any
// timezone information in the input.
type DateTimeField struct {
	Core
	Bounds

	// KeepTimeZone preserves the timezone of parsed values instead of
	// stripping it to UTC.
	KeepTimeZone bool
}

// Kind returns the descriptor's display name.
func (f *DateTimeField) Kind() string { return "DateTimeField" }

// ResolveDefault resolves the declared default, falling back to the current
// UTC time, evaluated per call.
func (f *DateTimeField) ResolveDefault() (any, error) {
	if f.Default == nil {
		return time.Now().UTC(), nil
	}
	return f.Core.ResolveDefault()
}

// Validate coerces the value to time.Time and applies the bounds check.
func (f *DateTimeField) Validate(value any) (any, error) {
	if value == nil {
		return nil, f.checkNil()
	}
	var t time.Time
	switch v := value.(type) {
	case time.Time:
		t = v
	case string:
		parsed, err := dateparse.ParseAny(v)
		if err != nil {
			return nil, f.fail(value, fmt.Sprintf("cannot parse value as a timestamp: %v", err))
		}
		t = parsed
		if !f.KeepTimeZone {
			t = stripZone(t)
		}
	default:
		return nil, f.typeFail(value, "time.Time")
	}
	if err := f.checkChoices(t); err != nil {
		return nil, err
	}
	if min := f.MinValue(); min != nil {
		m, ok := min.(time.Time)
		if !ok {
			return nil, p2ee.NewDefinitionError(f.FieldName, fmt.Sprintf("min bound %v is not a time.Time", min))
		}
		if t.Before(m) {
			return nil, f.fail(value, fmt.Sprintf("value is less than min value: %s", m))
		}
	}
	if max := f.MaxValue(); max != nil {
		m, ok := max.(time.Time)
		if !ok {
			return nil, p2ee.NewDefinitionError(f.FieldName, fmt.Sprintf("max bound %v is not a time.Time", max))
		}
		if t.After(m) {
			return nil, f.fail(value, fmt.Sprintf("value is greater than max value: %s", m))
		}
	}
	return t, nil
}

// stripZone reinterprets the wall-clock components of t in UTC.
func stripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
