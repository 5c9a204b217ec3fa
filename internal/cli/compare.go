package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkoppen/ceilgrid/internal/config"
	"github.com/mkoppen/ceilgrid/internal/engine"
	"github.com/mkoppen/ceilgrid/internal/model"
)

func newCompareCmd(loadConfig func(context.Context) config.Config) *cobra.Command {
	var (
		lengthMM     float64
		widthMM      float64
		perimeterGap float64
		panelGap     float64
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare strategy and algorithm what-ifs for one ceiling",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := loadConfig(ctx)

			spacing := model.PanelSpacing{PerimeterGapMM: cfg.PerimeterGapMM, PanelGapMM: cfg.PanelGapMM}
			if cmd.Flags().Changed("perimeter-gap") {
				spacing.PerimeterGapMM = perimeterGap
			}
			if cmd.Flags().Changed("panel-gap") {
				spacing.PanelGapMM = panelGap
			}
			ceiling := model.CeilingDimensions{LengthMM: lengthMM, WidthMM: widthMM}

			prog := newProgress(loggerFromContext(ctx))
			scenarios := engine.BuildDefaultScenarios(cfg.Settings())
			results := engine.CompareScenarios(scenarios, ceiling, spacing)
			prog.done(fmt.Sprintf("Compared %d scenarios", len(results)))

			fmt.Print(renderComparison(results))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&lengthMM, "length", "l", 0, "ceiling length in mm (required)")
	cmd.Flags().Float64VarP(&widthMM, "width", "w", 0, "ceiling width in mm (required)")
	cmd.Flags().Float64Var(&perimeterGap, "perimeter-gap", 0, "perimeter gap in mm")
	cmd.Flags().Float64Var(&panelGap, "panel-gap", 0, "inter-panel gap in mm")

	_ = cmd.MarkFlagRequired("length")
	_ = cmd.MarkFlagRequired("width")

	return cmd
}
