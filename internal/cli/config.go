package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/F4nJ/2FoldSyn/hybrid"
)

// fileConfig mirrors the optional TOML configuration accepted by the
// partition command:
//
//	[partition]
//	target_size    = 150
//	kl_max_iter    = 10
//	io_alpha       = 0.1
//	seed           = 42
//	collapse_wires = true
type fileConfig struct {
	Partition partitionConfig `toml:"partition"`
}

type partitionConfig struct {
	TargetSize    int     `toml:"target_size"`
	KLMaxIter     int     `toml:"kl_max_iter"`
	IOAlpha       float64 `toml:"io_alpha"`
	Seed          int64   `toml:"seed"`
	CollapseWires bool    `toml:"collapse_wires"`
}

// defaultPartitionConfig carries the pipeline defaults; a config file and
// then explicit flags overlay it in that order.
func defaultPartitionConfig() partitionConfig {
	return partitionConfig{
		KLMaxIter: hybrid.DefaultKLMaxIter,
		IOAlpha:   hybrid.DefaultAlpha,
		Seed:      hybrid.DefaultSeed,
	}
}

// overlayConfig applies the keys actually present in the TOML file onto
// base, leaving omitted keys at their prior values.
func overlayConfig(base *partitionConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var cfg fileConfig
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if md.IsDefined("partition", "target_size") {
		base.TargetSize = cfg.Partition.TargetSize
	}
	if md.IsDefined("partition", "kl_max_iter") {
		base.KLMaxIter = cfg.Partition.KLMaxIter
	}
	if md.IsDefined("partition", "io_alpha") {
		base.IOAlpha = cfg.Partition.IOAlpha
	}
	if md.IsDefined("partition", "seed") {
		base.Seed = cfg.Partition.Seed
	}
	if md.IsDefined("partition", "collapse_wires") {
		base.CollapseWires = cfg.Partition.CollapseWires
	}

	return nil
}
