package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinCut(t *testing.T) {
	tests := []struct {
		name  string
		nodes []string
		edges []Edge[string]
		want  []Edge[string]
	}{
		{
			name:  "bridge",
			nodes: []string{"A", "B", "C", "D", "E", "F"},
			edges: edges(
				"A", "B", "B", "A", "B", "C", "C", "B", "C", "A", "A", "C",
				"C", "D",
				"D", "E", "E", "D", "E", "F", "F", "E", "F", "D", "D", "F",
			),
			want: edges("C", "D"),
		},
		{
			name:  "leaf",
			nodes: []string{"A", "B", "C", "D"},
			edges: edges("A", "B", "B", "C", "C", "A", "A", "C", "C", "D"),
			want:  edges("C", "D"),
		},
		{
			name:  "disconnected",
			nodes: []string{"A", "B", "C"},
			edges: edges("A", "B", "B", "A"),
			want:  nil,
		},
		{
			name:  "single node",
			nodes: []string{"A"},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := map[string]int{}
			for _, n := range tt.nodes {
				nodes[n] = 0
			}
			g := mustNew(t, nodes, tt.edges)
			assert.Equal(t, tt.want, g.MinCut())
		})
	}
}

func TestMinCutWeights(t *testing.T) {
	// A-B is held by three parallel edges, B-C by two and C-D by one.
	g := mustNew(t,
		map[string]int{"A": 0, "B": 0, "C": 0, "D": 0},
		edges("A", "B", "A", "B", "B", "A", "B", "C", "C", "B", "C", "D"),
	)
	assert.Equal(t, edges("C", "D"), g.MinCut())
}
