package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/F4nJ/2FoldSyn/hybrid"
	"github.com/F4nJ/2FoldSyn/netlist"
)

// newPartitionCmd builds the partition command: netlist in, partition report
// out. Precedence for parameters is defaults < --config file < explicit
// flags.
func newPartitionCmd() *cobra.Command {
	var (
		flags      partitionConfig
		configPath string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "partition <netlist.v>",
		Short: "Partition a netlist into balanced modules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg := defaultPartitionConfig()
			if configPath != "" {
				if err := overlayConfig(&cfg, configPath); err != nil {
					return err
				}
			}
			overlayFlags(cmd, &cfg, flags)
			if cfg.TargetSize <= 0 {
				return fmt.Errorf("target partition size is required (--target-size or config file)")
			}

			var parseOpts []netlist.Option
			if cfg.CollapseWires {
				parseOpts = append(parseOpts, netlist.WithCollapseWires())
			}
			g, err := netlist.ParseFile(args[0], parseOpts...)
			if err != nil {
				return err
			}
			logger.Info("netlist loaded", "file", args[0], "nodes", g.NodeCount(), "edges", g.EdgeCount())

			res, err := hybrid.Partition(g, cfg.TargetSize,
				hybrid.WithKLMaxIter(cfg.KLMaxIter),
				hybrid.WithAlpha(cfg.IOAlpha),
				hybrid.WithSeed(cfg.Seed),
				hybrid.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				defer f.Close()
				if err := res.WriteReport(f); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				logger.Info("report written", "file", outputPath)

				return nil
			}

			return res.WriteReport(cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&flags.TargetSize, "target-size", 0, "target number of nodes per partition")
	cmd.Flags().IntVar(&flags.KLMaxIter, "kl-iter", hybrid.DefaultKLMaxIter, "max Kernighan-Lin iterations per partition pair")
	cmd.Flags().Float64Var(&flags.IOAlpha, "io-alpha", hybrid.DefaultAlpha, "weighting factor for I/O balance vs cut size")
	cmd.Flags().Int64Var(&flags.Seed, "seed", hybrid.DefaultSeed, "clustering seed for reproducible runs")
	cmd.Flags().BoolVar(&flags.CollapseWires, "collapse-wires", false, "fold single-driver wires before partitioning")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML configuration file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the partition report to a file instead of stdout")

	return cmd
}

// overlayFlags copies only explicitly-set flags onto cfg, so flag defaults
// never clobber config-file values.
func overlayFlags(cmd *cobra.Command, cfg *partitionConfig, flags partitionConfig) {
	if cmd.Flags().Changed("target-size") {
		cfg.TargetSize = flags.TargetSize
	}
	if cmd.Flags().Changed("kl-iter") {
		cfg.KLMaxIter = flags.KLMaxIter
	}
	if cmd.Flags().Changed("io-alpha") {
		cfg.IOAlpha = flags.IOAlpha
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flags.Seed
	}
	if cmd.Flags().Changed("collapse-wires") {
		cfg.CollapseWires = flags.CollapseWires
	}
}
