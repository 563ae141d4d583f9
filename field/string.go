package field

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/moengage/p2ee"
)

// StringField validates text values. The canonical representation is string.
type StringField struct {
	Core

	// MinLength and MaxLength bound the value's length in bytes.
	MinLength *int
	MaxLength *int

	// Pattern is a regular expression the entire value must match.
	// An invalid pattern surfaces as a definition error at validation time.
	Pattern string

	// NonEmpty rejects values that are empty or whitespace-only.
	NonEmpty bool

	reOnce sync.Once
	re     *regexp.Regexp
	reErr  error
}

// Kind returns the descriptor's display name.
func (f *StringField) Kind() string { return "StringField" }

// Validate checks that the value is a string and applies the declared
// length, pattern, and emptiness constraints.
func (f *StringField) Validate(value any) (any, error) {
	if value == nil {
		return nil, f.checkNil()
	}
	s, ok := value.(string)
	if !ok {
		return nil, f.typeFail(value, "string")
	}
	if err := f.checkChoices(s); err != nil {
		return nil, err
	}
	if f.MaxLength != nil && len(s) > *f.MaxLength {
		return nil, f.fail(s, fmt.Sprintf("string value too long, max length: %d", *f.MaxLength))
	}
	if f.MinLength != nil && len(s) < *f.MinLength {
		return nil, f.fail(s, fmt.Sprintf("string value too short, min length: %d", *f.MinLength))
	}
	if f.Pattern != "" {
		re, err := f.pattern()
		if err != nil {
			return nil, p2ee.NewDefinitionError(f.FieldName, fmt.Sprintf("invalid regex pattern %q: %v", f.Pattern, err))
		}
		if !re.MatchString(s) {
			return nil, f.fail(s, fmt.Sprintf("string value did not match validation regex: %q", f.Pattern))
		}
	}
	if f.NonEmpty && strings.TrimSpace(s) == "" {
		return nil, f.fail(s, "empty string value not allowed")
	}
	return s, nil
}

// pattern compiles Pattern once, anchored so it must match the whole value.
func (f *StringField) pattern() (*regexp.Regexp, error) {
	f.reOnce.Do(func() {
		f.re, f.reErr = regexp.Compile("^(?:" + f.Pattern + ")$")
	})
	return f.re, f.reErr
}

// emailRE is a strict email grammar: dot-atom local part, dotted domain
// with a 2-63 character alphabetic TLD.
var emailRE = regexp.MustCompile(
	`^[-!#$%&'*+/=?^_` + "`" + `{}|~0-9A-Za-z]+(\.[-!#$%&'*+/=?^_` + "`" + `{}|~0-9A-Za-z]+)*` +
		`@(?:[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?\.)+[A-Za-z]{2,63}$`)

// EmailField validates email addresses. It applies every StringField check
// first, then matches the value against a strict email grammar.
type EmailField struct {
	StringField
}

// Kind returns the descriptor's display name.
func (f *EmailField) Kind() string { return "EmailField" }

// Validate checks that the value is a string that parses as an email address.
func (f *EmailField) Validate(value any) (any, error) {
	v, err := f.StringField.Validate(value)
	if err != nil || v == nil {
		return v, err
	}
	s := v.(string)
	if !emailRE.MatchString(s) {
		return nil, f.fail(s, "invalid email address")
	}
	return s, nil
}

// Database name length limits.
const (
	dbNameMinLength = 1
	dbNameMaxLength = 100
)

// DBNameField validates database names: non-empty strings of at most 100
// characters.
type DBNameField struct {
	StringField
}

// Kind returns the descriptor's display name.
func (f *DBNameField) Kind() string { return "DBNameField" }

// Validate checks that the value is a string within database name limits.
func (f *DBNameField) Validate(value any) (any, error) {
	v, err := f.StringField.Validate(value)
	if err != nil || v == nil {
		return v, err
	}
	s := v.(string)
	if len(s) < dbNameMinLength {
		return nil, f.fail(s, fmt.Sprintf("string value too short, min length: %d", dbNameMinLength))
	}
	if len(s) > dbNameMaxLength {
		return nil, f.fail(s, fmt.Sprintf("string value too long, max length: %d", dbNameMaxLength))
	}
	return s, nil
}
