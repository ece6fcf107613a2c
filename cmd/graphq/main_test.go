package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/maisem/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func graphq(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr, args)
	return stdout.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "path",
			args: []string{"-f", "testdata/diamond.hcl", "path", "A", "D", "B"},
			want: "A -> C -> D (cost 3)\nA -> B (cost 5)\n",
		},
		{
			name: "path unreachable",
			args: []string{"-f", "testdata/diamond.hcl", "path", "D", "A"},
			want: "D -> A: no path\n",
		},
		{
			name: "paths dfs",
			args: []string{"-f", "testdata/diamond.hcl", "paths", "A", "D", "--max", "3"},
			want: "A -> C -> D\nA -> B -> D\n2 paths\n",
		},
		{
			name: "paths bfs",
			args: []string{"-f", "testdata/diamond.hcl", "paths", "A", "D", "--bfs"},
			want: "A -> B -> D\nA -> C -> D\n2 paths\n",
		},
		{
			name: "paths exact too short",
			args: []string{"-f", "testdata/diamond.hcl", "paths", "A", "D", "--max", "2", "--exact"},
			want: "0 paths\n",
		},
		{
			name: "paths bounded on a cycle",
			args: []string{"-f", "testdata/cycle.yaml", "paths", "A", "C", "--max", "5"},
			want: "A -> B -> C\n1 paths\n",
		},
		{
			name: "paths unbounded on a cycle",
			args: []string{"-f", "testdata/cycle.yaml", "paths", "A", "C"},
			want: "A -> B -> C\n1 paths\n",
		},
		{
			name: "count",
			args: []string{"-f", "testdata/diamond.hcl", "count", "A", "D"},
			want: "2\n",
		},
		{
			name: "count through",
			args: []string{"-f", "testdata/diamond.hcl", "count", "A", "D", "--through", "B,D"},
			want: "1\n",
		},
		{
			name: "components",
			args: []string{"-f", "testdata/diamond.hcl", "components"},
			want: "1: A B C D\n",
		},
		{
			name: "topo",
			args: []string{"-f", "testdata/diamond.hcl", "topo"},
			want: "A B C D\n",
		},
		{
			name: "mincut",
			args: []string{"-f", "testdata/bridge.hcl", "mincut"},
			want: "C->D\n1 edges\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := graphq(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDOT(t *testing.T) {
	got, err := graphq(t, "-f", "testdata/diamond.hcl", "dot", "--path", "A,D")
	require.NoError(t, err)
	assert.Contains(t, got, "digraph G {")
	assert.Contains(t, got, `"A" [ fillcolor="gold" label="start" ];`)
	assert.Contains(t, got, `"B" [ label="B" ];`)
	assert.Contains(t, got, `"A" -> "C" [ color="red" label="2" style="bold" ];`)
	assert.Contains(t, got, `"A" -> "B" [ label="5" ];`)
}

func TestErrors(t *testing.T) {
	_, err := graphq(t, "-f", "testdata/cycle.yaml", "count", "A", "C")
	assert.ErrorIs(t, err, graph.ErrCyclic)

	_, err = graphq(t, "-f", "testdata/diamond.hcl", "count", "A", "D", "--through", "B")
	assert.ErrorContains(t, err, "--through")

	_, err = graphq(t, "-f", "testdata/diamond.hcl", "paths", "A", "D", "--exact")
	assert.ErrorContains(t, err, "--exact needs --max")

	_, err = graphq(t, "topo")
	assert.Error(t, err, "missing --file")

	_, err = graphq(t, "-f", "testdata/diamond.hcl", "dot", "--path", "D,A")
	assert.ErrorContains(t, err, "no path")
}

func TestTrace(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr, []string{"-f", "testdata/diamond.hcl", "--trace", "--debug", "path", "A", "D"})
	require.NoError(t, err)
	assert.Equal(t, "A -> C -> D (cost 3)\n", stdout.String())
	assert.Contains(t, stderr.String(), "graph.ShortestPaths")
	assert.Contains(t, stderr.String(), "Loaded fixture")
}
