package graph

import "slices"

// Order selects how Paths walks its work list.
type Order int

const (
	// DepthFirst expands the most recently discovered partial path first.
	// It keeps the work list small and is what most callers want.
	DepthFirst Order = iota
	// BreadthFirst expands partial paths in discovery order, so results
	// come out in non-decreasing length.
	BreadthFirst
)

// PathOptions bounds a Paths query.
type PathOptions struct {
	// MaxLen is the maximum number of nodes in a path, start and goal
	// included. Zero or negative means unbounded. Paths stay simple, so an
	// unbounded search terminates on any graph, but its cost grows
	// exponentially with the number of reachable nodes.
	MaxLen int
	// Exact keeps only paths of exactly MaxLen nodes. It is ignored when
	// MaxLen is unbounded.
	Exact bool
	Order Order
}

type pathItem[K comparable] struct {
	cur  K
	path []K // nodes before cur
}

type worklist[T any] interface {
	Push(T)
	Pop() (T, bool)
}

// Paths returns every simple path from start to goal allowed by walkable
// and opts. A path ends as soon as it reaches goal and never visits a node
// twice. Parallel edges yield duplicate paths.
func (g *Graph[K, V]) Paths(start, goal K, walkable Walkable[K], opts PathOptions) [][]Node[K, V] {
	if !g.Has(start) || !g.Has(goal) {
		return nil
	}
	var w worklist[pathItem[K]]
	if opts.Order == BreadthFirst {
		w = &Queue[pathItem[K]]{}
	} else {
		w = &Stack[pathItem[K]]{}
	}
	bounded := opts.MaxLen > 0
	exact := bounded && opts.Exact

	var out [][]Node[K, V]
	w.Push(pathItem[K]{cur: start})
	for it, ok := w.Pop(); ok; it, ok = w.Pop() {
		path := make([]K, len(it.path)+1)
		copy(path, it.path)
		path[len(it.path)] = it.cur

		if it.cur == goal {
			if !exact || len(path) == opts.MaxLen {
				out = append(out, g.toNodes(path))
			}
			continue
		}
		if bounded && len(path) >= opts.MaxLen {
			continue
		}
		for _, n := range g.Neighbors(it.cur, walkable) {
			if slices.Contains(path, n) {
				continue
			}
			w.Push(pathItem[K]{cur: n, path: path})
		}
	}
	return out
}

// PathsBounded returns the simple paths from start to goal with at most
// maxLen nodes, depth first.
func (g *Graph[K, V]) PathsBounded(start, goal K, walkable Walkable[K], maxLen int) [][]Node[K, V] {
	return g.Paths(start, goal, walkable, PathOptions{MaxLen: maxLen})
}

// PathsExact returns the simple paths from start to goal with exactly n
// nodes, depth first.
func (g *Graph[K, V]) PathsExact(start, goal K, walkable Walkable[K], n int) [][]Node[K, V] {
	return g.Paths(start, goal, walkable, PathOptions{MaxLen: n, Exact: true})
}

func (g *Graph[K, V]) toNodes(ids []K) []Node[K, V] {
	out := make([]Node[K, V], len(ids))
	for i, k := range ids {
		out[i] = g.nodes[k]
	}
	return out
}
