package graph

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/goccy/go-graphviz"
)

// DOTOptions controls WriteDOT.
type DOTOptions[K comparable, V any] struct {
	// Title is the graph label. Empty means none.
	Title string
	// Label returns the text shown for a node. Nil uses the identity.
	Label func(Node[K, V]) string
	// Cost, if set, labels every edge with its cost.
	Cost CostFunc[V]
	// Highlight fills the tagged nodes with the tag as color, e.g. "gold".
	Highlight Annotations[K, string]
	// Path is a sequence of identities whose edges are drawn bold red.
	Path []K
}

type dotAttrs map[string]string

func (p dotAttrs) String() string {
	l := make([]string, 0, len(p))
	for k, v := range p {
		l = append(l, fmt.Sprintf("%s=%q", k, v))
	}
	sort.Strings(l)
	return strings.Join(l, " ")
}

type dotNode struct {
	ID    string
	Attrs dotAttrs
}

type dotEdge struct {
	From, To string
	Attrs    dotAttrs
}

type dotGraph struct {
	Title string
	Nodes []dotNode
	Edges []dotEdge
}

const tmplDOT = `digraph G {
{{- if .Title}}
	label={{printf "%q" .Title}};
{{- end}}
	node [shape="ellipse" style="filled" fillcolor="white" fontname="Verdana"];
{{- range .Nodes}}
	{{printf "%q" .ID}} [ {{.Attrs}} ];
{{- end}}
{{- range .Edges}}
	{{printf "%q -> %q" .From .To}} [ {{.Attrs}} ];
{{- end}}
}
`

var dotTemplate = template.Must(template.New("dot").Parse(tmplDOT))

// WriteDOT writes g to w in Graphviz DOT format. Nodes and edges appear in
// the graph's order, so the output is stable.
func WriteDOT[K comparable, V any](w io.Writer, g *Graph[K, V], opts DOTOptions[K, V]) error {
	name := func(k K) string { return fmt.Sprint(k) }
	onPath := make(map[Edge[K]]bool, len(opts.Path))
	for i := 1; i < len(opts.Path); i++ {
		onPath[Edge[K]{opts.Path[i-1], opts.Path[i]}] = true
	}

	dg := dotGraph{Title: opts.Title}
	for _, k := range g.order {
		n := g.nodes[k]
		attrs := dotAttrs{}
		if opts.Label != nil {
			attrs["label"] = opts.Label(n)
		}
		if c, ok := opts.Highlight.Get(n.ID); ok {
			attrs["fillcolor"] = c
		}
		dg.Nodes = append(dg.Nodes, dotNode{ID: name(n.ID), Attrs: attrs})
	}
	for _, e := range g.Edges() {
		attrs := dotAttrs{}
		if opts.Cost != nil {
			attrs["label"] = fmt.Sprint(g.cost(opts.Cost, e.From, e.To))
		}
		if onPath[e] {
			attrs["style"] = "bold"
			attrs["color"] = "red"
		}
		dg.Edges = append(dg.Edges, dotEdge{From: name(e.From), To: name(e.To), Attrs: attrs})
	}

	var buf bytes.Buffer
	if err := dotTemplate.Execute(&buf, dg); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderDOT lays out g with Graphviz and writes it to w in format, which
// is any format graphviz supports, such as "svg" or "png".
func RenderDOT[K comparable, V any](w io.Writer, g *Graph[K, V], opts DOTOptions[K, V], format string) error {
	var buf bytes.Buffer
	if err := WriteDOT(&buf, g, opts); err != nil {
		return err
	}
	gv := graphviz.New()
	defer gv.Close()
	parsed, err := graphviz.ParseBytes(buf.Bytes())
	if err != nil {
		return fmt.Errorf("parsing dot: %w", err)
	}
	defer parsed.Close()
	if err := gv.Render(parsed, graphviz.Format(format), w); err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}
	return nil
}
