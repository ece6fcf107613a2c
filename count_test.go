package graph

import (
	"errors"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountPaths(t *testing.T) {
	g := mustNew(t,
		map[string]int{"A": 0, "B": 0, "C": 0, "D": 0, "E": 0},
		edges("A", "B", "A", "C", "B", "D", "C", "D"),
	)
	tests := []struct {
		start, goal string
		walkable    Walkable[string]
		want        int64
	}{
		{"A", "D", nil, 2},
		{"A", "B", nil, 1},
		{"A", "A", nil, 1},
		{"D", "A", nil, 0},
		{"A", "E", nil, 0},
		{"A", "Z", nil, 0},
		{"A", "D", func(e Edge[string]) bool { return e.To != "B" }, 1},
	}
	for _, tt := range tests {
		got, err := g.CountPaths(tt.start, tt.goal, tt.walkable)
		require.NoError(t, err)
		if got.Int64() != tt.want {
			t.Errorf("CountPaths(%v, %v) = %v, want %v", tt.start, tt.goal, got, tt.want)
		}
	}
}

func TestCountPathsParallelEdges(t *testing.T) {
	g := mustNew(t,
		map[string]int{"A": 0, "B": 0, "C": 0},
		edges("A", "B", "A", "B", "B", "C"),
	)
	n, err := g.CountPaths("A", "C", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n.Int64())
}

func TestCountPathsCycle(t *testing.T) {
	tests := []struct {
		name        string
		nodes       map[string]int
		edges       []Edge[string]
		start, goal string
	}{
		{
			name:  "into the cycle",
			nodes: map[string]int{"A": 0, "B": 0, "C": 0, "S": 0},
			edges: edges("S", "A", "A", "B", "B", "C", "C", "A"),
			start: "S", goal: "C",
		},
		{
			name:  "around the cycle",
			nodes: map[string]int{"A": 0, "B": 0, "C": 0},
			edges: edges("A", "B", "B", "C", "C", "A"),
			start: "A", goal: "A",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t, tt.nodes, tt.edges)
			n, err := g.CountPaths(tt.start, tt.goal, nil)
			require.ErrorIs(t, err, ErrCyclic)
			assert.Nil(t, n)
			var ce *CyclicGraphError[string]
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, []string{"A", "B", "C"}, ce.Nodes)
		})
	}
}

func TestCountPathsLarge(t *testing.T) {
	// A ladder of 100 diamonds has 2^100 paths, more than fits in 64 bits.
	nodes := map[string]int{}
	var es []Edge[string]
	name := func(i int) string { return "n" + strconv.Itoa(i) }
	for i := 0; i < 100; i++ {
		a, b, l, r := name(i), name(i+1), "l"+strconv.Itoa(i), "r"+strconv.Itoa(i)
		nodes[a], nodes[b], nodes[l], nodes[r] = 0, 0, 0, 0
		es = append(es, Edge[string]{a, l}, Edge[string]{a, r}, Edge[string]{l, b}, Edge[string]{r, b})
	}
	g := mustNew(t, nodes, es)
	n, err := g.CountPaths(name(0), name(100), nil)
	require.NoError(t, err)
	want := new(big.Int).Lsh(big.NewInt(1), 100)
	assert.Equal(t, 0, want.Cmp(n), "got %v, want %v", n, want)
}

func TestCountPathsThrough(t *testing.T) {
	// svr -> {a, b} -> fft -> {c, d, e} -> dac -> out, plus svr -> out.
	g := mustNew(t,
		map[string]int{"svr": 0, "a": 0, "b": 0, "fft": 0, "c": 0, "d": 0, "e": 0, "dac": 0, "out": 0},
		edges(
			"svr", "a", "svr", "b", "a", "fft", "b", "fft",
			"fft", "c", "fft", "d", "fft", "e", "c", "dac", "d", "dac", "e", "dac",
			"dac", "out", "svr", "out",
		),
	)
	n, err := g.CountPathsThrough("svr", "out", "fft", "dac", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n.Int64())

	total, err := g.CountPaths("svr", "out", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total.Int64())

	n, err = g.CountPathsThrough("svr", "out", "dac", "fft", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n.Int64())
}

func TestTopoSort(t *testing.T) {
	g := mustNew(t,
		map[string]int{"A": 0, "B": 0, "C": 0, "D": 0},
		edges("D", "B", "B", "A", "C", "A"),
	)
	order, err := g.TopoSort()
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D", "B", "A"}, order)

	pos := map[string]int{}
	for i, k := range order {
		pos[k] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "edge %v", e)
	}
}

func TestTopoSortCycle(t *testing.T) {
	g := mustNew(t,
		map[string]int{"A": 0, "B": 0, "C": 0, "D": 0},
		edges("A", "B", "B", "C", "C", "B", "C", "D"),
	)
	order, err := g.TopoSort()
	assert.ErrorIs(t, err, ErrCyclic)
	assert.Equal(t, []string{"A"}, order)
	var ce *CyclicGraphError[string]
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []string{"B", "C", "D"}, ce.Nodes)
	assert.Contains(t, err.Error(), "3 nodes")
}
