package graph

import "github.com/benbjohnson/immutable"

// Annotations tags node identities with caller data, such as the tiles a
// path walks over. It is persistent: Set returns a new map and leaves the
// receiver untouched, so query results can be marked without mutating the
// graph or sharing mutable state between goroutines. The zero value is
// empty and ready to use.
type Annotations[K comparable, T any] struct {
	m *immutable.Map[K, T]
}

// NewAnnotations returns an empty annotation map.
func NewAnnotations[K comparable, T any]() Annotations[K, T] {
	return Annotations[K, T]{m: immutable.NewMap[K, T](keyHasher[K]{})}
}

func (a Annotations[K, T]) mp() *immutable.Map[K, T] {
	if a.m == nil {
		return immutable.NewMap[K, T](keyHasher[K]{})
	}
	return a.m
}

// Set returns a copy of a with id tagged as tag.
func (a Annotations[K, T]) Set(id K, tag T) Annotations[K, T] {
	return Annotations[K, T]{m: a.mp().Set(id, tag)}
}

// SetAll returns a copy of a with every id tagged as tag.
func (a Annotations[K, T]) SetAll(ids []K, tag T) Annotations[K, T] {
	m := a.mp()
	for _, id := range ids {
		m = m.Set(id, tag)
	}
	return Annotations[K, T]{m: m}
}

// Delete returns a copy of a without id.
func (a Annotations[K, T]) Delete(id K) Annotations[K, T] {
	return Annotations[K, T]{m: a.mp().Delete(id)}
}

func (a Annotations[K, T]) Get(id K) (T, bool) {
	if a.m == nil {
		var zero T
		return zero, false
	}
	return a.m.Get(id)
}

func (a Annotations[K, T]) Len() int {
	if a.m == nil {
		return 0
	}
	return a.m.Len()
}

// Each calls f for every tagged identity, in no particular order.
func (a Annotations[K, T]) Each(f func(id K, tag T)) {
	if a.m == nil {
		return
	}
	for itr := a.m.Iterator(); !itr.Done(); {
		k, v, _ := itr.Next()
		f(k, v)
	}
}

// NodeIDs returns the identities of nodes, e.g. one result of Paths.
func NodeIDs[K comparable, V any](nodes []Node[K, V]) []K {
	out := make([]K, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}
