package entities

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	f, err := ParseFields(nil)
	require.NoError(t, err)
	assert.Empty(t, f)

	f, err = ParseFields([]byte(`null`))
	require.NoError(t, err)
	assert.NotNil(t, f)

	_, err = ParseFields([]byte(`[1,2]`))
	assert.ErrorIs(t, err, ErrPatchNotObject)
	_, err = ParseFields([]byte(`"text"`))
	assert.ErrorIs(t, err, ErrPatchNotObject)
}

func TestFields_Helpers(t *testing.T) {
	f, err := ParseFields([]byte(`{"a":"x","b":null,"c":3}`))
	require.NoError(t, err)

	s, ok := f.String("a")
	assert.True(t, ok)
	assert.Equal(t, "x", s)
	_, ok = f.String("c")
	assert.False(t, ok)
	_, ok = f.String("missing")
	assert.False(t, ok)

	assert.True(t, f.Has("a"))
	assert.False(t, f.Has("b"))
	assert.False(t, f.Has("missing"))

	without := f.Without("a", "b")
	assert.Equal(t, []string{"c"}, without.Keys())
	assert.True(t, f.Has("a"))

	over := f.Overlay(Fields{"a": []byte(`"y"`), "d": []byte(`true`)})
	s, _ = over.String("a")
	assert.Equal(t, "y", s)
	s, _ = f.String("a")
	assert.Equal(t, "x", s)

	require.NoError(t, f.Set("e", []int{1}))
	assert.JSONEq(t, `[1]`, string(f["e"]))

	keys := over.Keys()
	sort.Strings(keys)
	assert.Equal(t, []string{"a", "b", "c", "d"}, keys)
}

func TestFieldsOf(t *testing.T) {
	f, err := FieldsOf(struct {
		Name string `json:"name"`
	}{Name: "Acme"})
	require.NoError(t, err)
	s, ok := f.String("name")
	assert.True(t, ok)
	assert.Equal(t, "Acme", s)

	_, err = FieldsOf([]string{"not", "an", "object"})
	assert.Error(t, err)
}
