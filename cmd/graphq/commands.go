package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/maisem/graph"
	"github.com/maisem/graph/internal/ctxlog"
	"github.com/maisem/graph/internal/fixture"
	"github.com/spf13/cobra"
)

var (
	bold  = color.New(color.Bold).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

type fixtureGraph = graph.Graph[string, fixture.Node]

func (o *options) load(cmd *cobra.Command) (*fixture.Fixture, *fixtureGraph, error) {
	f, err := fixture.Load(cmd.Context(), o.file)
	if err != nil {
		return nil, nil, err
	}
	g, err := f.Graph()
	if err != nil {
		return nil, nil, fmt.Errorf("building graph from %s: %w", o.file, err)
	}
	ctxlog.FromContext(cmd.Context()).Debug("Built graph", "nodes", g.Len(), "edges", g.NumEdges())
	return f, g, nil
}

// pair parses "A,B".
func pair(s string) (string, string, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok || a == "" || b == "" {
		return "", "", fmt.Errorf("want FROM,TO, got %q", s)
	}
	return a, b, nil
}

func joinIDs(ids []string) string {
	return strings.Join(ids, " -> ")
}

func newPathCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "path FROM TO [TO...]",
		Short: "Print the cheapest path from FROM to each TO",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, g, err := opts.load(cmd)
			if err != nil {
				return err
			}
			qs := make([]graph.Query[string], 0, len(args)-1)
			for _, to := range args[1:] {
				qs = append(qs, graph.Query[string]{Start: args[0], Goal: to})
			}
			res, err := g.ShortestPaths(cmd.Context(), qs, nil, f.Cost(), opts.parallel)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range res {
				if !r.OK {
					fmt.Fprintf(out, "%s -> %s: %s\n", r.Start, r.Goal, red("no path"))
					continue
				}
				ids := append([]string{r.Start}, r.Path.IDs()...)
				fmt.Fprintf(out, "%s (cost %s)\n", joinIDs(ids), green(r.Path.Cost()))
			}
			return nil
		},
	}
}

func newPathsCmd(opts *options) *cobra.Command {
	var (
		maxLen int
		exact  bool
		bfs    bool
	)
	cmd := &cobra.Command{
		Use:   "paths FROM TO",
		Short: "List simple paths from FROM to TO",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if exact && maxLen <= 0 {
				return fmt.Errorf("--exact needs --max")
			}
			_, g, err := opts.load(cmd)
			if err != nil {
				return err
			}
			po := graph.PathOptions{MaxLen: maxLen, Exact: exact}
			if bfs {
				po.Order = graph.BreadthFirst
			}
			paths := g.Paths(args[0], args[1], nil, po)
			out := cmd.OutOrStdout()
			for _, p := range paths {
				fmt.Fprintln(out, joinIDs(graph.NodeIDs(p)))
			}
			fmt.Fprintf(out, "%s paths\n", bold(len(paths)))
			return nil
		},
	}
	cmd.Flags().IntVar(&maxLen, "max", 0, "maximum path length in nodes (0 = unbounded)")
	cmd.Flags().BoolVar(&exact, "exact", false, "only print paths of exactly --max nodes")
	cmd.Flags().BoolVar(&bfs, "bfs", false, "search breadth first, shortest paths first")
	return cmd
}

func newCountCmd(opts *options) *cobra.Command {
	var through string
	cmd := &cobra.Command{
		Use:   "count FROM TO",
		Short: "Count paths from FROM to TO in an acyclic graph",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if through == "" {
				n, err := g.CountPaths(args[0], args[1], nil)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			}
			a, b, err := pair(through)
			if err != nil {
				return fmt.Errorf("--through: %w", err)
			}
			n, err := g.CountPathsThrough(args[0], args[1], a, b, nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
	cmd.Flags().StringVar(&through, "through", "", "only count paths visiting A then B, as A,B")
	return cmd
}

func newComponentsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List weakly connected components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := opts.load(cmd)
			if err != nil {
				return err
			}
			for i, c := range g.Components() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", bold(i+1), strings.Join(c, " "))
			}
			return nil
		},
	}
}

func newTopoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "topo",
		Short: "Print the nodes in topological order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := opts.load(cmd)
			if err != nil {
				return err
			}
			order, err := g.TopoSort()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(order, " "))
			return nil
		},
	}
}

func newMinCutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mincut",
		Short: "Print the edges of a global minimum cut, ignoring direction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := opts.load(cmd)
			if err != nil {
				return err
			}
			cut := g.MinCut()
			out := cmd.OutOrStdout()
			for _, e := range cut {
				fmt.Fprintln(out, e)
			}
			fmt.Fprintf(out, "%s edges\n", bold(len(cut)))
			return nil
		},
	}
}

func newDOTCmd(opts *options) *cobra.Command {
	var (
		path   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Write the graph in DOT or a rendered image format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, g, err := opts.load(cmd)
			if err != nil {
				return err
			}
			do := graph.DOTOptions[string, fixture.Node]{
				Title: opts.file,
				Label: func(n graph.Node[string, fixture.Node]) string { return n.Value.String() },
				Cost:  f.Cost(),
			}
			if path != "" {
				from, to, err := pair(path)
				if err != nil {
					return fmt.Errorf("--path: %w", err)
				}
				p, ok := g.ShortestPath(from, to, nil, f.Cost())
				if !ok {
					return fmt.Errorf("no path from %s to %s", from, to)
				}
				ids := append([]string{from}, p.IDs()...)
				do.Path = ids
				do.Highlight = graph.NewAnnotations[string, string]().SetAll(ids, "gold")
			}
			return writeGraph(cmd.OutOrStdout(), g, do, format)
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "highlight the cheapest path, as FROM,TO")
	cmd.Flags().StringVar(&format, "format", "dot", "output format: dot, or a graphviz format such as svg or png")
	return cmd
}

func writeGraph(w io.Writer, g *fixtureGraph, do graph.DOTOptions[string, fixture.Node], format string) error {
	if format == "dot" {
		return graph.WriteDOT(w, g, do)
	}
	var buf bytes.Buffer
	if err := graph.RenderDOT(&buf, g, do, format); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
