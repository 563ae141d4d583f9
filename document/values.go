package document

import (
	"strconv"
	"time"
)

// Typed accessors with coercion-friendly fallbacks. These are designed for
// reading flexible documents whose extra values arrive from JSON-like
// sources, where numbers may be float64, int, or numeric strings. All of
// them return the fallback instead of erroring on a type mismatch.

// GetString returns the string stored under name, or fallback.
func (d *Document) GetString(name, fallback string) string {
	v, ok := d.values[name]
	if !ok || v == nil {
		return fallback
	}
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	return s
}

// GetInt returns the integer stored under name, coercing int widths,
// float64, and numeric strings. Returns fallback on mismatch.
func (d *Document) GetInt(name string, fallback int64) int64 {
	v, ok := d.values[name]
	if !ok || v == nil {
		return fallback
	}
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case string:
		if parsed, err := strconv.ParseInt(n, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetFloat returns the float stored under name, coercing integer widths and
// numeric strings. Returns fallback on mismatch.
func (d *Document) GetFloat(name string, fallback float64) float64 {
	v, ok := d.values[name]
	if !ok || v == nil {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case string:
		if parsed, err := strconv.ParseFloat(n, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetBool returns the bool stored under name, or fallback.
func (d *Document) GetBool(name string, fallback bool) bool {
	v, ok := d.values[name]
	if !ok || v == nil {
		return fallback
	}
	b, ok := v.(bool)
	if !ok {
		return fallback
	}
	return b
}

// GetTime returns the time.Time stored under name, or fallback.
func (d *Document) GetTime(name string, fallback time.Time) time.Time {
	v, ok := d.values[name]
	if !ok || v == nil {
		return fallback
	}
	t, ok := v.(time.Time)
	if !ok {
		return fallback
	}
	return t
}

// GetStringSlice returns the strings stored under name. It handles
// []string, []any with string elements, and a single string value. Returns
// nil on mismatch.
func (d *Document) GetStringSlice(name string) []string {
	v, ok := d.values[name]
	if !ok || v == nil {
		return nil
	}
	switch s := v.(type) {
	case []string:
		out := make([]string, len(s))
		copy(out, s)
		return out
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil
			}
			out = append(out, str)
		}
		return out
	case string:
		return []string{s}
	}
	return nil
}
