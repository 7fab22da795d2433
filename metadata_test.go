package htmlfilter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/htmlfilter"
)

func TestMetadata_PutGetRemove(t *testing.T) {
	m := htmlfilter.NewMetadata()

	prev, replaced := m.Put("k", 1)
	assert.Nil(t, prev)
	assert.False(t, replaced)

	prev, replaced = m.Put("k", 2)
	assert.Equal(t, 1, prev)
	assert.True(t, replaced)

	v, ok := m.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = m.Remove("k")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = m.Get("k")
	assert.False(t, ok)
	_, ok = m.Remove("k")
	assert.False(t, ok)
}

func TestMetadata_ZeroValueUsable(t *testing.T) {
	var m htmlfilter.Metadata
	_, replaced := m.Put("k", "v")
	assert.False(t, replaced)
	v, ok := m.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestMetadata_Keys(t *testing.T) {
	m := htmlfilter.NewMetadata()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)
	m.Remove("b")
	assert.ElementsMatch(t, []string{"a", "c"}, m.Keys())
	assert.Equal(t, 2, m.Len())
}

func TestMetadata_DualNamedReset(t *testing.T) {
	// Both historical names for "remove everything" must behave
	// identically.
	for _, reset := range []struct {
		name string
		call func(*htmlfilter.Metadata)
	}{
		{"Clear", (*htmlfilter.Metadata).Clear},
		{"RemoveAllItems", (*htmlfilter.Metadata).RemoveAllItems},
	} {
		t.Run(reset.name, func(t *testing.T) {
			m := htmlfilter.NewMetadata()
			m.Put("a", 1)
			m.Put("b", 2)
			reset.call(m)
			assert.Empty(t, m.Keys())
			_, ok := m.Get("a")
			assert.False(t, ok)
		})
	}
}

func TestCopyMetadata_ClonesLocations(t *testing.T) {
	src := htmlfilter.NewMetadata()
	loc := &htmlfilter.Location{Line: 3, Column: 7}
	src.Put(htmlfilter.MetaLocation, loc)

	dup := htmlfilter.CopyMetadata(src)
	got, ok := dup.Get(htmlfilter.MetaLocation)
	require.True(t, ok)
	dupLoc, ok := got.(*htmlfilter.Location)
	require.True(t, ok)
	require.NotSame(t, loc, dupLoc)
	assert.Equal(t, *loc, *dupLoc)

	// Mutating the original must not leak into the copy.
	loc.Line = 99
	assert.Equal(t, 3, dupLoc.Line)
}

func TestCopyMetadata_AliasesOpaqueValues(t *testing.T) {
	type marker struct{ n int }
	src := htmlfilter.NewMetadata()
	v := &marker{n: 1}
	src.Put("opaque", v)

	dup := htmlfilter.CopyMetadata(src)
	got, ok := dup.Get("opaque")
	require.True(t, ok)
	assert.Same(t, v, got.(*marker))
}

func TestCopyMetadata_NilSource(t *testing.T) {
	dup := htmlfilter.CopyMetadata(nil)
	require.NotNil(t, dup)
	assert.Empty(t, dup.Keys())
}
