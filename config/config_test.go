package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ionparse/config"
	"ionparse/segsplit"
)

func writeTemp(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ionparse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestSplitterConfigAppliesOverrides(t *testing.T) {
	path := writeTemp(t, `
splitter:
  min_width: 500
  max_width: 200000
  window_width: 5000
  min_gain_per_sample: 0.05
  use_log: false
  splitter: slanted
`)
	f, err := config.Load(path)
	require.NoError(t, err)

	cfg, err := f.SplitterConfig()
	require.NoError(t, err)
	require.Equal(t, 500, cfg.MinWidth)
	require.Equal(t, 200000, cfg.MaxWidth)
	require.Equal(t, 5000, cfg.WindowWidth)
	require.InDelta(t, 0.05, cfg.MinGainPerSample, 1e-9)
	require.False(t, cfg.UseLog)
	require.Equal(t, segsplit.Slanted, cfg.SplitterKind)
}

func TestSplitterConfigDefaultsWithoutSection(t *testing.T) {
	f := &config.File{}
	cfg, err := f.SplitterConfig()
	require.NoError(t, err)
	require.Equal(t, segsplit.DefaultConfig(), cfg)
}

func TestThresholdConfigOverridesThresholdAndRules(t *testing.T) {
	path := writeTemp(t, "threshold:\n  threshold: 75\n")
	f, err := config.Load(path)
	require.NoError(t, err)

	cfg := f.ThresholdConfig()
	require.Equal(t, 75.0, cfg.Threshold)
	require.NotEmpty(t, cfg.Rules)
}

func TestSnakebaseAndDualThreshConfigDefaults(t *testing.T) {
	f := &config.File{}
	require.NotZero(t, f.SnakebaseConfig().Threshold)
	require.NotZero(t, f.DualThreshConfig().HighThresh)
}
