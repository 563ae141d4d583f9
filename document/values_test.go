package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moengage/p2ee/schema"
)

func flexDoc(t *testing.T, values map[string]any) *Document {
	t.Helper()
	def, err := schema.New("bag").Build()
	require.NoError(t, err)
	doc, err := New(def, values)
	require.NoError(t, err)
	return doc
}

func TestGetString(t *testing.T) {
	doc := flexDoc(t, map[string]any{"s": "hello", "n": 42})

	assert.Equal(t, "hello", doc.GetString("s", "fallback"))
	assert.Equal(t, "fallback", doc.GetString("n", "fallback"))
	assert.Equal(t, "fallback", doc.GetString("missing", "fallback"))
}

func TestGetInt(t *testing.T) {
	doc := flexDoc(t, map[string]any{
		"i64": int64(7),
		"i":   8,
		"f":   9.0,
		"s":   "10",
		"bad": "ten",
	})

	assert.Equal(t, int64(7), doc.GetInt("i64", -1))
	assert.Equal(t, int64(8), doc.GetInt("i", -1))
	assert.Equal(t, int64(9), doc.GetInt("f", -1))
	assert.Equal(t, int64(10), doc.GetInt("s", -1))
	assert.Equal(t, int64(-1), doc.GetInt("bad", -1))
	assert.Equal(t, int64(-1), doc.GetInt("missing", -1))
}

func TestGetFloat(t *testing.T) {
	doc := flexDoc(t, map[string]any{
		"f":   2.5,
		"f32": float32(1.5),
		"i":   3,
		"s":   "4.5",
	})

	assert.Equal(t, 2.5, doc.GetFloat("f", 0))
	assert.Equal(t, 1.5, doc.GetFloat("f32", 0))
	assert.Equal(t, 3.0, doc.GetFloat("i", 0))
	assert.Equal(t, 4.5, doc.GetFloat("s", 0))
	assert.Equal(t, 0.0, doc.GetFloat("missing", 0))
}

func TestGetBool(t *testing.T) {
	doc := flexDoc(t, map[string]any{"b": true, "s": "true"})

	assert.True(t, doc.GetBool("b", false))
	assert.False(t, doc.GetBool("s", false))
	assert.True(t, doc.GetBool("missing", true))
}

func TestGetTime(t *testing.T) {
	now := time.Now().UTC()
	epoch := time.Unix(0, 0).UTC()
	doc := flexDoc(t, map[string]any{"t": now, "s": "2020-01-01"})

	assert.Equal(t, now, doc.GetTime("t", epoch))
	assert.Equal(t, epoch, doc.GetTime("s", epoch))
	assert.Equal(t, epoch, doc.GetTime("missing", epoch))
}

func TestGetStringSlice(t *testing.T) {
	doc := flexDoc(t, map[string]any{
		"typed":  []string{"a", "b"},
		"anys":   []any{"c", "d"},
		"mixed":  []any{"c", 1},
		"single": "e",
	})

	assert.Equal(t, []string{"a", "b"}, doc.GetStringSlice("typed"))
	assert.Equal(t, []string{"c", "d"}, doc.GetStringSlice("anys"))
	assert.Nil(t, doc.GetStringSlice("mixed"))
	assert.Equal(t, []string{"e"}, doc.GetStringSlice("single"))
	assert.Nil(t, doc.GetStringSlice("missing"))
}
