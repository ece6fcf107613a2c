package graph

import "math/big"

// TopoSort orders the nodes so every edge points forward, using Kahn's
// algorithm over all edges. Ties follow the graph's node order. If the
// graph has a cycle it returns the nodes it could order and a
// *CyclicGraphError.
func (g *Graph[K, V]) TopoSort() ([]K, error) {
	indeg := make(map[K]int, len(g.nodes))
	for _, es := range g.edges {
		for _, e := range es {
			indeg[e.To]++
		}
	}
	var q Queue[K]
	for _, k := range g.order {
		if indeg[k] == 0 {
			q.Push(k)
		}
	}
	order := make([]K, 0, len(g.order))
	q.While(func(k K) bool {
		order = append(order, k)
		for _, e := range g.edges[k] {
			indeg[e.To]--
			if indeg[e.To] == 0 {
				q.Push(e.To)
			}
		}
		return true
	})
	if len(order) != len(g.order) {
		var left []K
		for _, k := range g.order {
			if indeg[k] > 0 {
				left = append(left, k)
			}
		}
		return order, &CyclicGraphError[K]{Nodes: left}
	}
	return order, nil
}

// CountPaths returns the number of distinct paths from start to goal over
// walkable edges. Parallel edges count as distinct paths. The graph must be
// acyclic; otherwise it returns a *CyclicGraphError. Unknown endpoints have
// zero paths.
func (g *Graph[K, V]) CountPaths(start, goal K, walkable Walkable[K]) (*big.Int, error) {
	if !g.Has(start) || !g.Has(goal) {
		return new(big.Int), nil
	}
	order, err := g.TopoSort()
	if err != nil {
		return nil, err
	}
	ways := map[K]*big.Int{start: big.NewInt(1)}
	for _, u := range order {
		w, ok := ways[u]
		if !ok {
			continue
		}
		for _, e := range g.edges[u] {
			if !walkable.allows(e) {
				continue
			}
			v, ok := ways[e.To]
			if !ok {
				v = new(big.Int)
				ways[e.To] = v
			}
			v.Add(v, w)
		}
	}
	if w, ok := ways[goal]; ok {
		return new(big.Int).Set(w), nil
	}
	return new(big.Int), nil
}

// CountPathsThrough returns the number of paths start→a→b→goal as the
// product of the three segment counts. It is only meaningful when the
// segments cannot share nodes, which is the caller's to guarantee.
func (g *Graph[K, V]) CountPathsThrough(start, goal, a, b K, walkable Walkable[K]) (*big.Int, error) {
	total := big.NewInt(1)
	for _, seg := range [][2]K{{start, a}, {a, b}, {b, goal}} {
		n, err := g.CountPaths(seg[0], seg[1], walkable)
		if err != nil {
			return nil, err
		}
		total.Mul(total, n)
	}
	return total, nil
}
