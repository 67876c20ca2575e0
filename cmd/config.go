package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/whip-phylo/whip/optimiser"
	"github.com/whip-phylo/whip/optimiser/beagle"
)

// DefaultConfigPath is read when --config is not given, if it exists.
const DefaultConfigPath = "whip.yaml"

// Config represents the full whip.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Beast  BeastConfig  `yaml:"beast"`
	Beagle BeagleConfig `yaml:"beagle"`
	Split  SplitConfig  `yaml:"split"`
}

// BeastConfig controls how beast is launched for estimates.
type BeastConfig struct {
	Binary string `yaml:"binary"`
	Seed   int64  `yaml:"seed"`
	// ExtraFlags are passed on every run: true → bare flag, false → omitted,
	// anything else → "flag value".
	ExtraFlags map[string]any `yaml:"extra_flags"`
}

// BeagleConfig controls option enumeration and sweeps.
type BeagleConfig struct {
	ResourceDelimiters []string `yaml:"resource_delimiters"`
	Exclude            []string `yaml:"exclude"`
	CPUCount           int      `yaml:"cpu_count"` // 0 = all CPUs
}

// SplitConfig holds defaults for the split command.
type SplitConfig struct {
	Nodes int `yaml:"nodes"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Beast: BeastConfig{
			Binary: optimiser.DefaultTool,
			Seed:   optimiser.DefaultSeed,
		},
		Beagle: BeagleConfig{
			ResourceDelimiters: append([]string(nil), beagle.DefaultDelimiters...),
		},
		Split: SplitConfig{Nodes: 2},
	}
}

// LoadConfig reads path over DefaultConfig. Keys absent from the file keep
// their defaults; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	if c.Beast.Binary == "" {
		return fmt.Errorf("beast.binary must not be empty")
	}
	if c.Split.Nodes < 1 {
		return fmt.Errorf("split.nodes must be at least 1, got %d", c.Split.Nodes)
	}
	if c.Beagle.CPUCount < 0 {
		return fmt.Errorf("beagle.cpu_count must be non-negative, got %d", c.Beagle.CPUCount)
	}
	return nil
}

// resolveConfig loads the explicit path, or the default path when present.
func resolveConfig(path string, explicit bool) (Config, error) {
	if !explicit {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
	}
	return LoadConfig(path)
}
