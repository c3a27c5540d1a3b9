package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 5000, cfg.Parser.BatchSize)
	assert.True(t, cfg.Parser.ContinueOnError)
	assert.Equal(t, "parquet", cfg.Output.Format)
	assert.Equal(t, 10000, cfg.Parser.ChannelBufferSize)
}

func TestNumWorkersAutoResolvesToCPUCount(t *testing.T) {
	cfg := Default()
	assert.Greater(t, cfg.NumWorkers(), 0)
}

func TestLoadFileMergesOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[parser]
batch_size = 1234
`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1234, cfg.Parser.BatchSize)
	// Untouched sections keep their defaults.
	assert.Equal(t, "parquet", cfg.Output.Format)
	assert.True(t, cfg.Parser.ContinueOnError)
}

func TestEnvOverridesBatchSize(t *testing.T) {
	t.Setenv("EGRUL_PARSER_BATCH_SIZE", "42")
	t.Setenv("EGRUL_PARALLEL_WORKERS", "4")

	cfg := Default()
	applyEnvOverrides(&cfg)
	assert.Equal(t, 42, cfg.Parser.BatchSize)
	assert.Equal(t, 4, cfg.NumWorkers())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := Default()
	cfg.Parser.BatchSize = 777
	require.NoError(t, Save(cfg, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 777, loaded.Parser.BatchSize)
}
