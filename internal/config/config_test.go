package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loclens/loclens/internal/config"
)

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, cfg.Exclude)
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".loclens.yml"), []byte("exclude: [vendor]\nformat: json\n"), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"vendor"}, cfg.Exclude)
	require.Equal(t, "json", cfg.Format)
}

func TestMergeExcludesDeduplicates(t *testing.T) {
	cfg := &config.RunConfig{Exclude: []string{"vendor", "dist"}}
	merged := cfg.MergeExcludes([]string{"dist", "tmp"})
	require.Equal(t, []string{"vendor", "dist", "tmp"}, merged)
}
