package graph

import (
	"hash/fnv"
	"io"

	"tailscale.com/util/deephash"
)

// DeepHashKey derives an identity for v from its contents. Use it with
// FromValues when values have no natural name:
//
//	g, err := graph.FromValues(states, graph.DeepHashKey[State], edges)
func DeepHashKey[V any](v V) deephash.Sum {
	return deephash.Hash(&v)
}

// keyHasher hashes arbitrary comparable keys for immutable maps, which only
// hash builtin key types on their own.
type keyHasher[K comparable] struct{}

func (keyHasher[K]) Hash(k K) uint32 {
	f := fnv.New32a()
	io.WriteString(f, deephash.Hash(&k).String())
	return f.Sum32()
}

func (keyHasher[K]) Equal(a, b K) bool { return a == b }
