package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoppen/ceilgrid/internal/config"
	"github.com/mkoppen/ceilgrid/internal/model"
)

func TestComputeSettingsMergeFlagsOverConfig(t *testing.T) {
	loadConfig := func(context.Context) config.Config { return config.Default() }
	cmd := newComputeCmd(loadConfig)

	require.NoError(t, cmd.Flags().Set("perimeter-gap", "300"))
	require.NoError(t, cmd.Flags().Set("strategy", "minimize_seams"))
	require.NoError(t, cmd.Flags().Set("genetic", "true"))
	require.NoError(t, cmd.Flags().Set("seed", "7"))

	opts := &computeOpts{perimeterGap: 300, strategy: "minimize_seams", genetic: true, seed: 7}
	settings, spacing := opts.settings(cmd, config.Default())

	assert.Equal(t, 300.0, spacing.PerimeterGapMM)
	assert.Equal(t, config.Default().PanelGapMM, spacing.PanelGapMM, "unset flag keeps config default")
	assert.Equal(t, model.StrategyMinimizeSeams, settings.Strategy)
	assert.Equal(t, model.AlgorithmGenetic, settings.Algorithm)
	assert.Equal(t, int64(7), settings.Genetic.Seed)
}

func TestComputeSettingsDefaultsWithoutFlags(t *testing.T) {
	loadConfig := func(context.Context) config.Config { return config.Default() }
	cmd := newComputeCmd(loadConfig)

	opts := &computeOpts{}
	settings, spacing := opts.settings(cmd, config.Default())

	assert.Equal(t, config.Default().PerimeterGapMM, spacing.PerimeterGapMM)
	assert.Equal(t, model.StrategyBalanced, settings.Strategy)
	assert.Equal(t, model.AlgorithmExhaustive, settings.Algorithm)
}

func TestLoggerFromContextFallback(t *testing.T) {
	assert.NotNil(t, loggerFromContext(context.Background()))
}
