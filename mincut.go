package graph

import (
	"math"
	"slices"
)

// weighted is an undirected weighted view of a Graph used by MinCut, which
// needs to merge nodes.
type weighted[K comparable] struct {
	nodes map[K]bool
	edges map[K]map[K]int
}

func (g *Graph[K, V]) undirected() *weighted[K] {
	w := &weighted[K]{
		nodes: make(map[K]bool, len(g.nodes)),
		edges: make(map[K]map[K]int, len(g.nodes)),
	}
	for _, k := range g.order {
		w.nodes[k] = true
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		w.addEdge(e.From, e.To, w.edges[e.From][e.To]+1)
	}
	return w
}

func (w *weighted[K]) addEdge(a, b K, dist int) {
	if w.edges[a] == nil {
		w.edges[a] = make(map[K]int)
	}
	if w.edges[b] == nil {
		w.edges[b] = make(map[K]int)
	}
	w.edges[a][b] = dist
	w.edges[b][a] = dist
}

func (w *weighted[K]) removeEdge(a, b K) {
	delete(w.edges[a], b)
	delete(w.edges[b], a)
}

// MinCut calculates the global minimum cut of the graph viewed as
// undirected, where each directed edge adds 1 to the weight between its
// endpoints, using the Stoer–Wagner algorithm. It returns the edges of g
// that cross the cut. Graphs with fewer than two nodes have no cut.
func (g *Graph[K, V]) MinCut() []Edge[K] {
	if len(g.order) < 2 {
		return nil
	}
	var (
		w2    = g.undirected()
		start = g.order[0]

		set = map[K][]K{} // merged node -> original nodes

		minCut = math.MaxInt
		best   []K
	)
	for _, k := range g.order {
		set[k] = []K{k}
	}
	for len(w2.nodes) > 1 {
		s, t, cut := w2.minCutPhase(start)
		if cut < minCut {
			minCut = cut
			best = slices.Clone(set[t])
		}
		set[s] = append(set[s], set[t]...)
		delete(set, t)
		w2.merge(s, t)
	}

	side := make(map[K]bool, len(best))
	for _, k := range best {
		side[k] = true
	}
	var cuts []Edge[K]
	for _, e := range g.Edges() {
		if side[e.From] != side[e.To] {
			cuts = append(cuts, e)
		}
	}
	return cuts
}

// minCutPhase runs one phase of the min cut algorithm. It returns the last two
// nodes traversed and the weight of the cut.
//
// It is equivalent to running a max flow algorithm from start to any other node
// in the graph.
func (w *weighted[K]) minCutPhase(start K) (s, t K, wOut int) {
	pq := MaxQueue[K]()
	pris := map[K]*PQI[K]{}
	for k := range w.nodes {
		i := &PQI[K]{
			V: k,
			P: 0,
		}
		if k == start {
			i.P = 1
		}
		pris[k] = i
		pq.Push(i)
	}

	first := true
	for pq.Len() > 0 {
		next := pq.Pop()

		for k, v := range w.edges[next.V] {
			p := pris[k]
			if p.Index() != -1 {
				p.P += v
				pq.Update(p)
			}
		}
		s, t = t, next.V
		wOut = next.P
		if first {
			wOut-- // undo the start bias
			first = false
		}
	}
	return
}

// merge folds t into s, summing parallel weights.
func (w *weighted[K]) merge(s, t K) {
	for k, tvk := range w.edges[t] {
		w.removeEdge(t, k)
		if k == s {
			continue
		}
		w.addEdge(s, k, w.edges[s][k]+tvk)
	}
	delete(w.nodes, t)
	delete(w.edges, t)
}
