// Package graph is a generic directed graph with the searches that keep
// coming up in Advent of Code: Dijkstra, simple path enumeration, DAG path
// counting and a handful of helpers around them.
//
// A Graph is built once from a node set and an edge list and is read-only
// afterwards. Queries take identities and per-query closures for
// walkability and cost, so one Graph can serve many queries, including
// concurrent ones.
package graph

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Edge is a directed link between two node identities.
type Edge[K comparable] struct {
	From, To K
}

// Reverse returns the edge pointing the other way.
func (e Edge[K]) Reverse() Edge[K] {
	return Edge[K]{From: e.To, To: e.From}
}

func (e Edge[K]) String() string {
	return fmt.Sprintf("%v->%v", e.From, e.To)
}

// Node is a vertex: the caller's value and the identity it is keyed by.
type Node[K comparable, V any] struct {
	ID    K
	Value V
}

// Walkable reports whether an edge may be traversed. A nil Walkable allows
// every edge.
type Walkable[K comparable] func(Edge[K]) bool

func (w Walkable[K]) allows(e Edge[K]) bool {
	return w == nil || w(e)
}

// CostFunc returns the non-negative cost of moving from one value to the
// next.
type CostFunc[V any] func(from, to V) int

// UnitCost is a CostFunc charging 1 per edge.
func UnitCost[V any](_, _ V) int { return 1 }

// Graph is a directed multigraph over values of type V keyed by K.
type Graph[K comparable, V any] struct {
	nodes  map[K]Node[K, V]
	edges  map[K][]Edge[K] // by origin, in insertion order
	order  []K             // stable node order
	nedges int
}

// New builds a graph from nodes keyed by identity and a list of edges.
// Parallel edges are kept. It returns a *MissingNodeError if an edge
// references an identity not present in nodes.
//
// Node order (used by IDs, TopoSort and Components) is the order of the
// keys' fmt representation, since map order is random.
func New[K comparable, V any](nodes map[K]V, edges []Edge[K]) (*Graph[K, V], error) {
	ids := make([]K, 0, len(nodes))
	for k := range nodes {
		ids = append(ids, k)
	}
	slices.SortFunc(ids, func(a, b K) int {
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
	return build(ids, nodes, edges)
}

// build makes a graph whose node order is order; every key of values must
// appear in order exactly once.
func build[K comparable, V any](order []K, values map[K]V, edges []Edge[K]) (*Graph[K, V], error) {
	g := &Graph[K, V]{
		nodes: make(map[K]Node[K, V], len(values)),
		edges: make(map[K][]Edge[K]),
		order: order,
	}
	for _, k := range order {
		g.nodes[k] = Node[K, V]{ID: k, Value: values[k]}
	}
	if err := g.addEdges(edges); err != nil {
		return nil, err
	}
	return g, nil
}

// FromValues builds a graph whose node identities are derived from values
// with id. Node order follows values; a repeated identity keeps the last
// value at the first position.
func FromValues[K comparable, V any](values []V, id func(V) K, edges []Edge[K]) (*Graph[K, V], error) {
	var order []K
	m := make(map[K]V, len(values))
	for _, v := range values {
		k := id(v)
		if _, ok := m[k]; !ok {
			order = append(order, k)
		}
		m[k] = v
	}
	return build(order, m, edges)
}

func (g *Graph[K, V]) addEdges(edges []Edge[K]) error {
	for _, e := range edges {
		if _, ok := g.nodes[e.From]; !ok {
			return &MissingNodeError[K]{Edge: e, ID: e.From}
		}
		if _, ok := g.nodes[e.To]; !ok {
			return &MissingNodeError[K]{Edge: e, ID: e.To}
		}
		g.edges[e.From] = append(g.edges[e.From], e)
	}
	g.nedges = len(edges)
	return nil
}

// Len returns the number of nodes.
func (g *Graph[K, V]) Len() int { return len(g.nodes) }

// NumEdges returns the number of edges, counting parallel edges.
func (g *Graph[K, V]) NumEdges() int { return g.nedges }

// Node returns the node with the given identity.
func (g *Graph[K, V]) Node(id K) (Node[K, V], bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Has reports whether id is a node of g.
func (g *Graph[K, V]) Has(id K) bool {
	_, ok := g.nodes[id]
	return ok
}

// IDs returns the node identities in the graph's stable order.
func (g *Graph[K, V]) IDs() []K {
	return slices.Clone(g.order)
}

// Nodes returns a copy of the identity to node mapping.
func (g *Graph[K, V]) Nodes() map[K]Node[K, V] {
	return maps.Clone(g.nodes)
}

// EdgesFrom returns the outgoing edges of id in insertion order.
func (g *Graph[K, V]) EdgesFrom(id K) []Edge[K] {
	return slices.Clone(g.edges[id])
}

// Edges returns every edge, grouped by origin in node order.
func (g *Graph[K, V]) Edges() []Edge[K] {
	out := make([]Edge[K], 0, g.nedges)
	for _, k := range g.order {
		out = append(out, g.edges[k]...)
	}
	return out
}

// Neighbors returns the destinations of the walkable outgoing edges of
// origin. A node without outgoing edges, or an unknown one, has none.
func (g *Graph[K, V]) Neighbors(origin K, walkable Walkable[K]) []K {
	var out []K
	for _, e := range g.edges[origin] {
		if walkable.allows(e) {
			out = append(out, e.To)
		}
	}
	return out
}

// Reachable returns the set of nodes reachable from start, start included.
func (g *Graph[K, V]) Reachable(start K, walkable Walkable[K]) map[K]bool {
	visited := make(map[K]bool)
	if !g.Has(start) {
		return visited
	}
	q := NewQueue(start)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for _, k := range g.Neighbors(v, walkable) {
			if !visited[k] {
				q.Push(k)
			}
		}
		return true
	})
	return visited
}

// LongestPath returns the cost of the most expensive simple path from start
// to end. It is exponential in the worst case.
func (g *Graph[K, V]) LongestPath(start, end K, walkable Walkable[K], cost CostFunc[V]) (rp int, ok bool) {
	if !g.Has(start) || !g.Has(end) {
		return 0, false
	}
	return g.longestPathHelper(start, end, walkable, cost, make(map[K]bool))
}

func (g *Graph[K, V]) longestPathHelper(start, end K, walkable Walkable[K], cost CostFunc[V], visited map[K]bool) (rp int, ok bool) {
	if start == end {
		return 0, true
	}

	visited[start] = true
	defer func() {
		visited[start] = false
	}()
	max := -1
	for _, k := range g.Neighbors(start, walkable) {
		if visited[k] {
			continue
		}
		got, ok := g.longestPathHelper(k, end, walkable, cost, visited)
		if !ok {
			continue
		}
		got += g.cost(cost, start, k)
		if max == -1 || got > max {
			max = got
		}
	}
	if max != -1 {
		return max, true
	}
	return 0, false
}

// cost evaluates c for the edge from a to b, panicking on negative costs.
func (g *Graph[K, V]) cost(c CostFunc[V], a, b K) int {
	if c == nil {
		return 1
	}
	w := c(g.nodes[a].Value, g.nodes[b].Value)
	if w < 0 {
		panic(fmt.Sprintf("graph: negative cost %d on edge %v->%v", w, a, b))
	}
	return w
}
