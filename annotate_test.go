package graph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotations(t *testing.T) {
	var zero Annotations[string, int]
	assert.Equal(t, 0, zero.Len())
	_, ok := zero.Get("A")
	assert.False(t, ok)

	a := zero.Set("A", 1)
	b := a.SetAll([]string{"B", "C"}, 2)
	c := b.Delete("A")

	assert.Equal(t, 0, zero.Len(), "Set modified its receiver")
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 2, c.Len())

	v, ok := b.Get("A")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = c.Get("A")
	assert.False(t, ok)

	var keys []string
	b.Each(func(id string, tag int) {
		keys = append(keys, id)
	})
	sort.Strings(keys)
	assert.Equal(t, []string{"A", "B", "C"}, keys)
}

func TestAnnotationsStructKeys(t *testing.T) {
	m := NewAnnotations[Pt, rune]().Set(Pt{1, 2}, '#')
	v, ok := m.Get(Pt{1, 2})
	assert.True(t, ok)
	assert.Equal(t, '#', v)
	_, ok = m.Get(Pt{2, 1})
	assert.False(t, ok)
}

func TestAnnotatePaths(t *testing.T) {
	g := diamond(t)
	marks := NewAnnotations[string, string]()
	for i, p := range g.PathsExact("A", "D", nil, 3) {
		marks = marks.SetAll(NodeIDs(p), string(rune('x'+i)))
	}
	// The later path overwrites shared nodes.
	got := map[string]string{}
	marks.Each(func(id, tag string) { got[id] = tag })
	assert.Equal(t, map[string]string{"A": "y", "B": "y", "C": "x", "D": "y"}, got)
}
