package graph

import uf "github.com/spakin/disjoint"

// Components returns the weakly connected components of g: edge direction
// is ignored. Components are ordered by their first node in the graph's
// node order, and nodes within a component keep that order too.
func (g *Graph[K, V]) Components() [][]K {
	elems := make(map[K]*uf.Element, len(g.order))
	for _, k := range g.order {
		el := uf.NewElement()
		el.Data = k
		elems[k] = el
	}
	for _, e := range g.Edges() {
		uf.Union(elems[e.From], elems[e.To])
	}

	index := make(map[*uf.Element]int)
	var out [][]K
	for _, k := range g.order {
		rep := elems[k].Find()
		i, ok := index[rep]
		if !ok {
			i = len(out)
			index[rep] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], k)
	}
	return out
}
