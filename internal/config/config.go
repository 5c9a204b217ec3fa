// Package config loads and persists the application configuration.
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mkoppen/ceilgrid/internal/model"
)

// Config holds the defaults applied by the CLI and HTTP server when a
// request omits a value. The engine itself never reads configuration.
type Config struct {
	PerimeterGapMM    float64 `toml:"perimeter_gap_mm"`
	PanelGapMM        float64 `toml:"panel_gap_mm"`
	TargetAspectRatio float64 `toml:"target_aspect_ratio"`
	Strategy          string  `toml:"strategy"`
	Algorithm         string  `toml:"algorithm"`

	Genetic model.GeneticConfig `toml:"genetic"`

	ListenAddr string `toml:"listen_addr"`
}

func Default() Config {
	return Config{
		PerimeterGapMM:    100,
		PanelGapMM:        50,
		TargetAspectRatio: 1.0,
		Strategy:          string(model.StrategyBalanced),
		Algorithm:         string(model.AlgorithmExhaustive),
		Genetic:           model.DefaultGeneticConfig(),
		ListenAddr:        ":8080",
	}
}

// Settings converts the configured defaults into engine settings.
func (c Config) Settings() model.SearchSettings {
	return model.SearchSettings{
		Algorithm:         model.Algorithm(c.Algorithm),
		Strategy:          model.ParseStrategy(c.Strategy),
		TargetAspectRatio: c.TargetAspectRatio,
		Genetic:           c.Genetic,
	}
}

// DefaultDir returns the default directory for application configuration.
// On all platforms this is ~/.ceilgrid/
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".ceilgrid")
}

// DefaultPath returns the default path for the application config file.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.toml")
}

// Save persists a Config to the given path as TOML.
// It creates any missing parent directories automatically.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Load reads a Config from the given path.
// If the file does not exist, it returns Default with no error. Values
// absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
