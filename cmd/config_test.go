package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whip-phylo/whip/optimiser/beagle"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "whip.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig_MatchesBuiltInDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "beast", cfg.Beast.Binary)
	assert.Equal(t, int64(999), cfg.Beast.Seed)
	assert.Equal(t, beagle.DefaultDelimiters, cfg.Beagle.ResourceDelimiters)
	assert.Equal(t, 2, cfg.Split.Nodes)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	// GIVEN a config that only sets the seed and an extra flag
	path := writeConfig(t, "beast:\n  seed: 42\n  extra_flags:\n    beagle_scaling: always\n    working: true\n")

	// WHEN it is loaded
	cfg, err := LoadConfig(path)

	// THEN the given keys override and the rest stay at their defaults
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Beast.Seed)
	assert.Equal(t, "beast", cfg.Beast.Binary)
	assert.Equal(t, map[string]any{"beagle_scaling": "always", "working": true}, cfg.Beast.ExtraFlags)
	assert.Equal(t, 2, cfg.Split.Nodes)
}

func TestLoadConfig_DelimitersReplaceDefaults(t *testing.T) {
	path := writeConfig(t, "beagle:\n  resource_delimiters: [\"Resources:\"]\n  exclude: [GPU]\n")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Resources:"}, cfg.Beagle.ResourceDelimiters)
	assert.Equal(t, []string{"GPU"}, cfg.Beagle.Exclude)
}

func TestLoadConfig_UnknownKeyRejected(t *testing.T) {
	// GIVEN a typo in a key
	path := writeConfig(t, "beast:\n  sead: 42\n")

	// WHEN it is loaded
	_, err := LoadConfig(path)

	// THEN strict parsing reports it
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sead")
}

func TestLoadConfig_EmptyFileIsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero nodes", "split:\n  nodes: 0\n", "split.nodes"},
		{"empty binary", "beast:\n  binary: \"\"\n", "beast.binary"},
		{"negative cpus", "beagle:\n  cpu_count: -1\n", "beagle.cpu_count"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestResolveConfig_MissingDefaultPathIsNotAnError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "whip.yaml")

	// GIVEN the default path does not exist and --config was not given
	cfg, err := resolveConfig(missing, false)

	// THEN built-in defaults are used
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// AND an explicit missing path is an error
	_, err = resolveConfig(missing, true)
	assert.Error(t, err)
}
