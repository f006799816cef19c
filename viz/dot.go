// Package viz: DOT generation and graphviz-backed rasterization.
package viz

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/F4nJ/2FoldSyn/circuit"
	"github.com/F4nJ/2FoldSyn/partition"
)

// Node fill colors by kind, matching the upstream visualization palette.
var kindColors = map[circuit.Kind]string{
	circuit.KindPI:   "#90ee90",
	circuit.KindPO:   "#ffcccb",
	circuit.KindGate: "#add8e6",
	circuit.KindWire: "#d3d3d3",
}

// ToDOT renders g as a directed Graphviz document. A non-nil parts list
// groups nodes into one cluster subgraph per partition; nodes missing from
// every partition (or when parts is nil) are emitted at the top level.
func ToDOT(g *circuit.Graph, parts []partition.NodeSet) string {
	var buf bytes.Buffer
	buf.WriteString("digraph circuit {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=10];\n\n")

	emitted := make(map[string]struct{})
	for i, p := range parts {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=\"partition %d\";\n", i)
		buf.WriteString("    color=grey;\n")
		ids := make([]string, 0, len(p))
		for id := range p {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Fprintf(&buf, "    %s;\n", nodeStmt(g, id))
			emitted[id] = struct{}{}
		}
		buf.WriteString("  }\n")
	}

	for _, id := range g.Nodes() {
		if _, done := emitted[id]; done {
			continue
		}
		fmt.Fprintf(&buf, "  %s;\n", nodeStmt(g, id))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}
	buf.WriteString("}\n")

	return buf.String()
}

// nodeStmt formats one node with its kind color and label. Gate nodes show
// their function under the instance name.
func nodeStmt(g *circuit.Graph, id string) string {
	n, _ := g.Node(id)
	label := n.ID
	if n.Kind == circuit.KindGate {
		label = fmt.Sprintf("%s\\n%s", n.ID, n.Func)
	}
	// The label is quoted by hand: it may carry a DOT \n escape that %q
	// would double-escape.
	attrs := []string{
		fmt.Sprintf(`label="%s"`, label),
		fmt.Sprintf("fillcolor=%q", kindColors[n.Kind]),
	}

	return fmt.Sprintf("%q [%s]", id, strings.Join(attrs, ", "))
}

// RenderSVG rasterizes a DOT document to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG rasterizes a DOT document to PNG.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("viz: init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("viz: parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, format, &buf); err != nil {
		return nil, fmt.Errorf("viz: render: %w", err)
	}

	return buf.Bytes(), nil
}
