package fixture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/maisem/graph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Load for files that are neither HCL nor
// YAML.
var ErrUnknownFormat = errors.New("unknown fixture format")

// Load reads, decodes and validates the fixture at path. The format is
// picked by extension: .hcl, or .yaml/.yml.
func Load(ctx context.Context, path string) (*Fixture, error) {
	logger := ctxlog.FromContext(ctx)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}

	var f *Fixture
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl":
		f, err = ParseHCL(src, path)
	case ".yaml", ".yml":
		f, err = ParseYAML(src)
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	logger.Debug("Loaded fixture", "path", path, "nodes", len(f.Nodes), "edges", len(f.Edges))
	return f, nil
}

type hclFixture struct {
	Nodes []*hclNode `hcl:"node,block"`
	Edges []*hclEdge `hcl:"edge,block"`
}

type hclNode struct {
	ID     string         `hcl:"id,label"`
	Label  hcl.Expression `hcl:"label,optional"`
	Weight *int           `hcl:"weight,optional"`
}

type hclEdge struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
	Cost *int   `hcl:"cost,optional"`
}

// ParseHCL decodes and validates an HCL fixture. filename is only used in
// diagnostics.
func ParseHCL(src []byte, filename string) (*Fixture, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %w", diags)
	}
	var raw hclFixture
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %w", diags)
	}

	f := &Fixture{
		Nodes: make([]Node, 0, len(raw.Nodes)),
		Edges: make([]Edge, 0, len(raw.Edges)),
	}
	for _, n := range raw.Nodes {
		label, err := stringValue(n.Label)
		if err != nil {
			return nil, fmt.Errorf("node %q: label: %w", n.ID, err)
		}
		f.Nodes = append(f.Nodes, Node{ID: n.ID, Label: label, Weight: n.Weight})
	}
	for _, e := range raw.Edges {
		f.Edges = append(f.Edges, Edge{From: e.From, To: e.To, Cost: e.Cost})
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	return f, nil
}

// stringValue evaluates a literal expression and converts it to a string,
// so that `label = 42` reads as "42". A missing attribute is "".
func stringValue(expr hcl.Expression) (string, error) {
	if expr == nil {
		return "", nil
	}
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if v.IsNull() {
		return "", nil
	}
	v, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", err
	}
	var s string
	if err := gocty.FromCtyValue(v, &s); err != nil {
		return "", err
	}
	return s, nil
}

// ParseYAML decodes and validates a YAML fixture.
func ParseYAML(src []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(src, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	return &f, nil
}
