package field

import (
	"errors"
	"testing"

	"github.com/moengage/p2ee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListField(t *testing.T) {
	t.Run("without validator", func(t *testing.T) {
		f := &ListField{}
		got, err := f.Validate([]any{"a", 1, true})
		require.NoError(t, err)
		assert.Equal(t, []any{"a", 1, true}, got)
	})

	t.Run("typed slices are accepted", func(t *testing.T) {
		f := &ListField{Validator: &IntField{}}
		got, err := f.Validate([]int{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, []any{int64(1), int64(2), int64(3)}, got)
	})

	t.Run("elements are normalized", func(t *testing.T) {
		f := &ListField{Validator: &IntField{}}
		got, err := f.Validate([]any{1, 2.0, int32(3)})
		require.NoError(t, err)
		assert.Equal(t, []any{int64(1), int64(2), int64(3)}, got)
	})

	t.Run("element failure carries the index", func(t *testing.T) {
		f := &ListField{Core: Core{FieldName: "nums"}, Validator: &IntField{}}
		_, err := f.Validate([]any{1, "x", 3})
		require.Error(t, err)
		assert.True(t, errors.Is(err, p2ee.ErrInvalidValue))
		assert.Contains(t, err.Error(), "item 1")
	})

	t.Run("non-slice rejected", func(t *testing.T) {
		f := &ListField{}
		_, err := f.Validate("not a list")
		require.Error(t, err)
		assert.True(t, errors.Is(err, p2ee.ErrInvalidValue))
	})

	t.Run("max items", func(t *testing.T) {
		f := &ListField{MaxItems: 2}
		_, err := f.Validate([]any{1, 2, 3})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too many items")
	})

	t.Run("nested lists", func(t *testing.T) {
		f := &ListField{Validator: &ListField{Validator: &IntField{}}}
		got, err := f.Validate([]any{[]any{1}, []any{2, 3}})
		require.NoError(t, err)
		assert.Equal(t, []any{[]any{int64(1)}, []any{int64(2), int64(3)}}, got)
	})

	t.Run("default is an empty list", func(t *testing.T) {
		f := &ListField{}
		v, err := f.ResolveDefault()
		require.NoError(t, err)
		assert.Equal(t, []any{}, v)
	})
}

func TestMultiListFieldFirstMatchWins(t *testing.T) {
	f := &MultiListField{Validators: []Field{&IntField{}, &StringField{}}}

	got, err := f.Validate([]any{1, "a", 2})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), "a", int64(2)}, got)
}

func TestMultiListFieldDeclaredOrder(t *testing.T) {
	// An integral float matches IntField before FloatField when IntField
	// is declared first.
	f := &MultiListField{Validators: []Field{&IntField{}, &FloatField{}}}
	got, err := f.Validate([]any{2.0})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(2)}, got)

	g := &MultiListField{Validators: []Field{&FloatField{}, &IntField{}}}
	got, err = g.Validate([]any{2.0})
	require.NoError(t, err)
	assert.Equal(t, []any{float64(2)}, got)
}

func TestMultiListFieldExhaustionNamesCandidates(t *testing.T) {
	f := &MultiListField{
		Core:       Core{FieldName: "items"},
		Validators: []Field{&IntField{}, &StringField{}},
	}

	// 2.5 is not integral and not a string: no candidate accepts it.
	_, err := f.Validate([]any{1, "a", 2.5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, p2ee.ErrInvalidDefinition),
		"union exhaustion is a definition error, not a value error")
	assert.Contains(t, err.Error(), "IntField")
	assert.Contains(t, err.Error(), "StringField")
}

func TestMultiListFieldFalsyValuesMatch(t *testing.T) {
	// Zero values are valid matches, not misses.
	f := &MultiListField{Validators: []Field{&IntField{}, &StringField{}}}
	got, err := f.Validate([]any{0, ""})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(0), ""}, got)
}

func TestMultiListFieldNilValidator(t *testing.T) {
	f := &MultiListField{Validators: []Field{nil}}
	_, err := f.Validate([]any{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, p2ee.ErrInvalidDefinition))
}

func TestMultiListFieldWithoutValidators(t *testing.T) {
	f := &MultiListField{MaxItems: 3}
	got, err := f.Validate([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	_, err = f.Validate([]string{"a", "b", "c", "d"})
	require.Error(t, err)
}
