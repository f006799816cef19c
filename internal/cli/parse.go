package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/F4nJ/2FoldSyn/netlist"
	"github.com/F4nJ/2FoldSyn/viz"
)

// newParseCmd builds the parse command: load a netlist, log its shape, and
// optionally write DOT/SVG/PNG renderings of the signal-flow graph.
func newParseCmd() *cobra.Command {
	var (
		collapse bool
		dotPath  string
		svgPath  string
		pngPath  string
	)

	cmd := &cobra.Command{
		Use:   "parse <netlist.v>",
		Short: "Parse a Verilog netlist and inspect the resulting graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			var parseOpts []netlist.Option
			if collapse {
				parseOpts = append(parseOpts, netlist.WithCollapseWires())
			}
			g, err := netlist.ParseFile(args[0], parseOpts...)
			if err != nil {
				return err
			}
			logger.Info("netlist loaded", "file", args[0], "nodes", g.NodeCount(), "edges", g.EdgeCount())

			if dotPath == "" && svgPath == "" && pngPath == "" {
				return nil
			}

			dot := viz.ToDOT(g, nil)
			if dotPath != "" {
				if err := os.WriteFile(dotPath, []byte(dot), 0o644); err != nil {
					return fmt.Errorf("write DOT: %w", err)
				}
				logger.Info("DOT written", "file", dotPath)
			}
			if svgPath != "" {
				data, err := viz.RenderSVG(cmd.Context(), dot)
				if err != nil {
					return err
				}
				if err := os.WriteFile(svgPath, data, 0o644); err != nil {
					return fmt.Errorf("write SVG: %w", err)
				}
				logger.Info("SVG written", "file", svgPath)
			}
			if pngPath != "" {
				data, err := viz.RenderPNG(cmd.Context(), dot)
				if err != nil {
					return err
				}
				if err := os.WriteFile(pngPath, data, 0o644); err != nil {
					return fmt.Errorf("write PNG: %w", err)
				}
				logger.Info("PNG written", "file", pngPath)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&collapse, "collapse-wires", false, "fold single-driver wires into direct gate connections")
	cmd.Flags().StringVar(&dotPath, "dot", "", "write the graph as a Graphviz DOT file")
	cmd.Flags().StringVar(&svgPath, "svg", "", "render the graph to an SVG file")
	cmd.Flags().StringVar(&pngPath, "png", "", "render the graph to a PNG file")

	return cmd
}
