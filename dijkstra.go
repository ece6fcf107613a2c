package graph

import "slices"

// Step is one node of a shortest path together with the cumulative cost of
// reaching it from the start.
type Step[K comparable, V any] struct {
	Node[K, V]
	Cost int
}

// Path is the result of ShortestPath. It excludes the start node.
type Path[K comparable, V any] []Step[K, V]

// Cost returns the total cost of the path; 0 for an empty path.
func (p Path[K, V]) Cost() int {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].Cost
}

// IDs returns the identities along the path.
func (p Path[K, V]) IDs() []K {
	out := make([]K, len(p))
	for i, s := range p {
		out[i] = s.ID
	}
	return out
}

// ShortestPath finds a cheapest path from start to goal with Dijkstra's
// algorithm. The returned path excludes start; ok is false if goal cannot
// be reached. Equal-cost frontier entries are expanded in the order they
// were discovered, so results are deterministic.
//
// cost must be non-negative; a negative cost panics. A nil cost charges 1
// per edge.
func (g *Graph[K, V]) ShortestPath(start, goal K, walkable Walkable[K], cost CostFunc[V]) (_ Path[K, V], ok bool) {
	if !g.Has(start) || !g.Has(goal) {
		return nil, false
	}
	if start == goal {
		return Path[K, V]{}, true
	}
	dist, prev, found := g.dijkstra(start, &goal, walkable, cost)
	if !found {
		return nil, false
	}
	var ids []K
	for k := goal; k != start; k = prev[k] {
		ids = append(ids, k)
	}
	slices.Reverse(ids)
	path := make(Path[K, V], len(ids))
	for i, k := range ids {
		path[i] = Step[K, V]{Node: g.nodes[k], Cost: dist[k]}
	}
	return path, true
}

// Distances returns the cost of the cheapest path from start to every
// reachable node, start included at 0.
func (g *Graph[K, V]) Distances(start K, walkable Walkable[K], cost CostFunc[V]) map[K]int {
	if !g.Has(start) {
		return map[K]int{}
	}
	dist, _, _ := g.dijkstra(start, nil, walkable, cost)
	return dist
}

// dijkstra runs until goal is settled, or the frontier is exhausted if goal
// is nil.
func (g *Graph[K, V]) dijkstra(start K, goal *K, walkable Walkable[K], cost CostFunc[V]) (dist map[K]int, prev map[K]K, found bool) {
	dist = map[K]int{start: 0}
	prev = make(map[K]K)
	settled := make(map[K]bool)

	q := MinQueue[K]()
	q.Push(&PQI[K]{V: start, P: 0})
	for q.Len() > 0 {
		cur := q.Pop()
		if settled[cur.V] {
			continue // stale entry
		}
		settled[cur.V] = true
		if goal != nil && cur.V == *goal {
			return dist, prev, true
		}
		for _, k := range g.Neighbors(cur.V, walkable) {
			if settled[k] {
				continue
			}
			nd := cur.P + g.cost(cost, cur.V, k)
			if d, ok := dist[k]; ok && nd >= d {
				continue
			}
			dist[k] = nd
			prev[k] = cur.V
			q.Push(&PQI[K]{V: k, P: nd})
		}
	}
	return dist, prev, false
}

// AllShortestPaths returns the cheapest cost between every ordered pair of
// nodes using Floyd-Warshall. Unreachable pairs are absent; every node is
// at distance 0 from itself.
func (g *Graph[K, V]) AllShortestPaths(walkable Walkable[K], cost CostFunc[V]) map[Edge[K]]int {
	dist := map[Edge[K]]int{}
	for _, k := range g.order {
		dist[Edge[K]{k, k}] = 0
	}
	for _, e := range g.Edges() {
		if !walkable.allows(e) {
			continue
		}
		w := g.cost(cost, e.From, e.To)
		if d, ok := dist[e]; !ok || w < d {
			dist[e] = w
		}
	}
	for _, k2 := range g.order {
		for _, k1 := range g.order {
			e12, ok := dist[Edge[K]{k1, k2}]
			if !ok {
				continue
			}
			for _, k3 := range g.order {
				e23, ok := dist[Edge[K]{k2, k3}]
				if !ok {
					continue
				}
				if e13, ok := dist[Edge[K]{k1, k3}]; !ok || e12+e23 < e13 {
					dist[Edge[K]{k1, k3}] = e12 + e23
				}
			}
		}
	}
	return dist
}
