package field

import (
	"errors"
	"testing"

	"github.com/moengage/p2ee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringField(t *testing.T) {
	tests := []struct {
		name    string
		f       *StringField
		value   any
		want    any
		wantErr bool
	}{
		{"plain string", &StringField{}, "hello", "hello", false},
		{"non-string rejected", &StringField{}, 42, nil, true},
		{"bool rejected", &StringField{}, true, nil, true},
		{"max length ok", &StringField{MaxLength: IntPtr(5)}, "abc", "abc", false},
		{"max length exceeded", &StringField{MaxLength: IntPtr(5)}, "abcdef", nil, true},
		{"min length ok", &StringField{MinLength: IntPtr(3)}, "abc", "abc", false},
		{"min length violated", &StringField{MinLength: IntPtr(3)}, "ab", nil, true},
		{"pattern match", &StringField{Pattern: "^a.*"}, "abc", "abc", false},
		{"pattern mismatch", &StringField{Pattern: "^a.*"}, "xyz", nil, true},
		{"pattern is anchored", &StringField{Pattern: "STR[0-9]"}, "STR2x", nil, true},
		{"non-empty ok", &StringField{NonEmpty: true}, "x", "x", false},
		{"non-empty rejects blank", &StringField{NonEmpty: true}, "   ", nil, true},
		{"non-empty rejects empty", &StringField{NonEmpty: true}, "", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f.Validate(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, p2ee.ErrInvalidValue))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringFieldInvalidPattern(t *testing.T) {
	f := &StringField{Pattern: "("}
	_, err := f.Validate("anything")
	require.Error(t, err)
	assert.True(t, errors.Is(err, p2ee.ErrInvalidDefinition))
}

func TestEmailField(t *testing.T) {
	valid := []string{
		"abc@abc.com",
		"first.last@example.co",
		"user+tag@sub.example.org",
	}
	invalid := []string{
		"not-an-email",
		"@example.com",
		"user@",
		"user@example",
		"user @example.com",
	}

	f := &EmailField{}
	for _, addr := range valid {
		got, err := f.Validate(addr)
		require.NoError(t, err, "address %q should validate", addr)
		assert.Equal(t, addr, got)
	}
	for _, addr := range invalid {
		_, err := f.Validate(addr)
		require.Error(t, err, "address %q should be rejected", addr)
		assert.True(t, errors.Is(err, p2ee.ErrInvalidValue))
	}
}

func TestEmailFieldInheritsStringChecks(t *testing.T) {
	f := &EmailField{StringField: StringField{MaxLength: IntPtr(10)}}
	_, err := f.Validate("long.address@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too long")
}

func TestDBNameField(t *testing.T) {
	f := &DBNameField{}

	got, err := f.Validate("analytics")
	require.NoError(t, err)
	assert.Equal(t, "analytics", got)

	_, err = f.Validate("")
	require.Error(t, err)

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	_, err = f.Validate(string(long))
	require.Error(t, err)
}
