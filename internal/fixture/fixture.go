// Package fixture loads graphs stored in HCL or YAML files.
//
// An HCL fixture is a list of node and edge blocks:
//
//	node "A" {
//	  label  = "start"
//	  weight = 1
//	}
//	edge {
//	  from = "A"
//	  to   = "B"
//	  cost = 3
//	}
//
// The YAML form has the same fields under top-level nodes and edges lists,
// with the node name in an id field.
package fixture

import (
	"github.com/go-playground/validator/v10"
	"github.com/maisem/graph"
)

// Node is a fixture vertex. It is the value type of the graphs built by
// Fixture.Graph.
type Node struct {
	ID    string `yaml:"id" validate:"required"`
	Label string `yaml:"label"`
	// Weight is the cost of entering the node when the edge has no cost.
	Weight *int `yaml:"weight" validate:"omitempty,gte=0"`
}

func (n Node) String() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a directed fixture edge.
type Edge struct {
	From string `yaml:"from" validate:"required"`
	To   string `yaml:"to" validate:"required"`
	Cost *int   `yaml:"cost" validate:"omitempty,gte=0"`
}

// Fixture is a decoded graph file.
type Fixture struct {
	Nodes []Node `yaml:"nodes" validate:"required,unique=ID,dive"`
	Edges []Edge `yaml:"edges" validate:"dive"`
}

var validate = validator.New()

// Validate checks field constraints. It does not check that edge
// endpoints exist; Graph reports those.
func (f *Fixture) Validate() error {
	return validate.Struct(f)
}

// Graph builds the fixture's graph, with nodes in file order. An edge
// naming an unknown node yields an error matching graph.ErrMissingNode.
func (f *Fixture) Graph() (*graph.Graph[string, Node], error) {
	edges := make([]graph.Edge[string], len(f.Edges))
	for i, e := range f.Edges {
		edges[i] = graph.Edge[string]{From: e.From, To: e.To}
	}
	return graph.FromValues(f.Nodes, func(n Node) string { return n.ID }, edges)
}

// Cost returns the fixture's cost function. Moving along an edge costs
// the edge's cost (the cheapest one if parallel edges set different
// costs), else the destination's weight, else 1.
func (f *Fixture) Cost() graph.CostFunc[Node] {
	costs := make(map[graph.Edge[string]]int)
	for _, e := range f.Edges {
		if e.Cost == nil {
			continue
		}
		k := graph.Edge[string]{From: e.From, To: e.To}
		if c, ok := costs[k]; !ok || *e.Cost < c {
			costs[k] = *e.Cost
		}
	}
	return func(from, to Node) int {
		if c, ok := costs[graph.Edge[string]{From: from.ID, To: to.ID}]; ok {
			return c
		}
		if to.Weight != nil {
			return *to.Weight
		}
		return 1
	}
}
