// Package netlist: regex-based structural Verilog parsing.
package netlist

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/F4nJ/2FoldSyn/circuit"
)

// ErrRead indicates the netlist source could not be read. It wraps the
// underlying I/O error and is reported before the partitioning core runs.
var ErrRead = errors.New("netlist: cannot read source")

// Declaration and instance patterns of the supported Verilog subset.
var (
	inputPattern  = regexp.MustCompile(`input\s+([^;]+);`)
	outputPattern = regexp.MustCompile(`output\s+([^;]+);`)
	wirePattern   = regexp.MustCompile(`wire\s+([^;]+);`)
	gatePattern   = regexp.MustCompile(`\b(and|or|not|nand|nor|xor|xnor)\b\s+(\w+)\s*\(([^;]+)\);`)
)

// Options configures parsing.
//
// CollapseWires – fold single-driver wire nodes into direct driver→reader
// edges after the graph is built.
type Options struct {
	CollapseWires bool
}

// Option is a functional option for Parse.
type Option func(*Options)

// WithCollapseWires enables the wire-collapse transform.
func WithCollapseWires() Option {
	return func(o *Options) { o.CollapseWires = true }
}

// Parse reads a structural Verilog netlist from r and builds the signal-flow
// graph. Reader failures come back wrapped in ErrRead.
// Complexity: O(source length + V + E).
func Parse(r io.Reader, opts ...Option) (*circuit.Graph, error) {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	content := strings.ReplaceAll(string(raw), `\`, "")

	g := circuit.NewGraph()

	// 1) Signal declarations: PIs, POs, wires. Outputs may re-declare a
	// signal already seen; the existing node is upgraded to PO.
	for _, m := range inputPattern.FindAllStringSubmatch(content, -1) {
		for _, sig := range splitSignals(m[1]) {
			if err := g.AddNode(sig, circuit.KindPI); err != nil {
				return nil, err
			}
		}
	}
	for _, m := range outputPattern.FindAllStringSubmatch(content, -1) {
		for _, sig := range splitSignals(m[1]) {
			if g.HasNode(sig) {
				if err := g.SetKind(sig, circuit.KindPO); err != nil {
					return nil, err
				}

				continue
			}
			if err := g.AddNode(sig, circuit.KindPO); err != nil {
				return nil, err
			}
		}
	}
	for _, m := range wirePattern.FindAllStringSubmatch(content, -1) {
		for _, sig := range splitSignals(m[1]) {
			if err := g.AddNode(sig, circuit.KindWire); err != nil {
				return nil, err
			}
		}
	}

	// 2) Gate instances: the first connection is the driven output signal,
	// the rest are inputs. Undeclared signals default to wires.
	for _, m := range gatePattern.FindAllStringSubmatch(content, -1) {
		fn, inst := circuit.GateFunc(m[1]), m[2]
		conns := splitSignals(m[3])
		if len(conns) == 0 {
			continue
		}
		if err := g.AddGate(inst, fn); err != nil {
			return nil, err
		}

		out := conns[0]
		if err := g.AddNode(out, circuit.KindWire); err != nil {
			return nil, err
		}
		if err := g.AddEdge(inst, out); err != nil {
			return nil, err
		}
		for _, in := range conns[1:] {
			if err := g.AddNode(in, circuit.KindWire); err != nil {
				return nil, err
			}
			if err := g.AddEdge(in, inst); err != nil {
				return nil, err
			}
		}
	}

	if cfg.CollapseWires {
		collapseWires(g)
	}

	return g, nil
}

// ParseFile opens and parses a netlist file. Open failures come back wrapped
// in ErrRead.
func ParseFile(path string, opts ...Option) (*circuit.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// splitSignals splits a comma-separated declaration body into trimmed,
// non-empty signal names.
func splitSignals(body string) []string {
	parts := strings.Split(body, ",")
	sigs := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sigs = append(sigs, s)
		}
	}

	return sigs
}

// collapseWires folds every single-driver wire node into direct
// driver→reader edges. Chains of wires collapse fully because the scan
// repeats until a pass removes nothing; iteration over sorted IDs keeps the
// transform deterministic.
func collapseWires(g *circuit.Graph) {
	for {
		collapsed := false
		for _, id := range g.Nodes() {
			n, ok := g.Node(id)
			if !ok || n.Kind != circuit.KindWire {
				continue
			}
			preds := g.Predecessors(id)
			if len(preds) != 1 {
				continue // undriven or multi-driven nets stay as nodes
			}
			driver := preds[0]
			readers := g.Successors(id)
			if len(readers) == 0 {
				continue // sink nets stay observable
			}

			if g.RemoveNode(id) != nil {
				continue
			}
			for _, r := range readers {
				// Driver and readers still exist, so AddEdge cannot fail.
				_ = g.AddEdge(driver, r)
			}
			collapsed = true
		}
		if !collapsed {
			break
		}
	}
}
