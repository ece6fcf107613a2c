package graph

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDOT(t *testing.T) {
	g := diamond(t)
	var buf bytes.Buffer
	err := WriteDOT(&buf, g, DOTOptions[string, int]{
		Title:     "diamond",
		Label:     func(n Node[string, int]) string { return n.ID + "=" + strconv.Itoa(n.Value) },
		Cost:      UnitCost[int],
		Highlight: NewAnnotations[string, string]().Set("B", "gold"),
		Path:      []string{"A", "B", "D"},
	})
	require.NoError(t, err)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph G {\n"), out)
	assert.True(t, strings.HasSuffix(out, "}\n"), out)
	assert.Contains(t, out, `label="diamond";`)
	assert.Contains(t, out, `"A" [ label="A=1" ];`)
	assert.Contains(t, out, `"B" [ fillcolor="gold" label="B=1" ];`)
	assert.Contains(t, out, `"A" -> "B" [ color="red" label="1" style="bold" ];`)
	assert.Contains(t, out, `"A" -> "C" [ label="1" ];`)
	assert.Contains(t, out, `"B" -> "D" [ color="red" label="1" style="bold" ];`)

	// Nodes come out in graph order.
	assert.Less(t, strings.Index(out, `"A" [`), strings.Index(out, `"D" [`))
}

func TestWriteDOTPlain(t *testing.T) {
	g := mustNew(t, map[string]int{"x": 0}, nil)
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, g, DOTOptions[string, int]{}))
	assert.Contains(t, buf.String(), `"x" [  ];`)
	assert.NotContains(t, buf.String(), "label=")
}

func TestRenderDOT(t *testing.T) {
	g := diamond(t)
	var buf bytes.Buffer
	require.NoError(t, RenderDOT(&buf, g, DOTOptions[string, int]{Title: "diamond"}, "svg"))
	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), "diamond")
}
