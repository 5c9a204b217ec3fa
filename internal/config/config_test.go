package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoppen/ceilgrid/internal/model"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.PerimeterGapMM = 250
	cfg.Strategy = string(model.StrategyMinimizeSeams)
	cfg.Genetic.Seed = 99

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("panel_gap_mm = 75.0\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 75.0, cfg.PanelGapMM)
	assert.Equal(t, Default().PerimeterGapMM, cfg.PerimeterGapMM)
	assert.Equal(t, Default().ListenAddr, cfg.ListenAddr)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not == toml"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSettingsConversion(t *testing.T) {
	cfg := Default()
	cfg.Strategy = "minimize_panels" // alias
	cfg.Algorithm = string(model.AlgorithmGenetic)

	s := cfg.Settings()
	assert.Equal(t, model.StrategyMinimizeSeams, s.Strategy)
	assert.Equal(t, model.AlgorithmGenetic, s.Algorithm)
	assert.Equal(t, 1.0, s.TargetAspectRatio)
}
