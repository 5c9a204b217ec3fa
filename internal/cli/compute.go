package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkoppen/ceilgrid/internal/config"
	"github.com/mkoppen/ceilgrid/internal/engine"
	"github.com/mkoppen/ceilgrid/internal/estimate"
	"github.com/mkoppen/ceilgrid/internal/model"
)

// computeOpts holds the command-line flags for the compute command.
type computeOpts struct {
	lengthMM      float64
	widthMM       float64
	perimeterGap  float64
	panelGap      float64
	targetRatio   float64
	strategy      string
	genetic       bool
	seed          int64
	alternates    int
	sparePercent  float64
	pricePerPanel float64
	jsonOutput    bool
}

// settings merges the flags the user actually set over the config defaults.
func (o *computeOpts) settings(cmd *cobra.Command, cfg config.Config) (model.SearchSettings, model.PanelSpacing) {
	settings := cfg.Settings()
	spacing := model.PanelSpacing{PerimeterGapMM: cfg.PerimeterGapMM, PanelGapMM: cfg.PanelGapMM}

	if cmd.Flags().Changed("perimeter-gap") {
		spacing.PerimeterGapMM = o.perimeterGap
	}
	if cmd.Flags().Changed("panel-gap") {
		spacing.PanelGapMM = o.panelGap
	}
	if cmd.Flags().Changed("ratio") {
		settings.TargetAspectRatio = o.targetRatio
	}
	if cmd.Flags().Changed("strategy") {
		settings.Strategy = model.ParseStrategy(o.strategy)
	}
	if o.genetic {
		settings.Algorithm = model.AlgorithmGenetic
	}
	if o.seed != 0 {
		settings.Genetic.Seed = o.seed
	}
	return settings, spacing
}

func newComputeCmd(loadConfig func(context.Context) config.Config) *cobra.Command {
	opts := &computeOpts{}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the optimal panel layout for a ceiling",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := loadConfig(ctx)

			settings, spacing := opts.settings(cmd, cfg)
			ceiling := model.CeilingDimensions{LengthMM: opts.lengthMM, WidthMM: opts.widthMM}

			logger.Debug("search starting",
				"algorithm", settings.Algorithm,
				"strategy", settings.Strategy,
				"ceiling", fmt.Sprintf("%.0fx%.0fmm", ceiling.LengthMM, ceiling.WidthMM),
			)

			prog := newProgress(logger)
			eng := engine.New(settings)
			layout, err := eng.Compute(ceiling, spacing)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Evaluated layout %dx%d", layout.PanelsPerColumn, layout.PanelsPerRow))

			ranked := eng.Alternates(opts.alternates)

			if opts.jsonOutput {
				out := struct {
					Layout     model.PanelLayout          `json:"layout"`
					Score      float64                    `json:"score"`
					Alternates []engine.ScoredLayout      `json:"alternates,omitempty"`
					Estimate   *estimate.PurchaseEstimate `json:"estimate,omitempty"`
				}{Layout: layout}
				if len(ranked) > 0 {
					out.Score = ranked[0].Score
					out.Alternates = ranked[1:]
				}
				if opts.pricePerPanel > 0 {
					est := estimate.CalculatePurchase(layout, opts.sparePercent, opts.pricePerPanel)
					out.Estimate = &est
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			var score float64
			if len(ranked) > 0 {
				score = ranked[0].Score
			}
			fmt.Print(renderLayout(layout, score))
			if len(ranked) > 1 {
				fmt.Print(renderAlternates(ranked[1:]))
			}
			if opts.pricePerPanel > 0 {
				est := estimate.CalculatePurchase(layout, opts.sparePercent, opts.pricePerPanel)
				fmt.Printf("  %s %s\n",
					styleLabel.Render(fmt.Sprintf("%-16s", "Order")),
					styleValue.Render(fmt.Sprintf("%d panels (%.0f%% spares), est. %.2f", est.PanelsWithSpares, est.SparePercent, est.EstimatedCost)),
				)
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&opts.lengthMM, "length", "l", 0, "ceiling length in mm (required)")
	cmd.Flags().Float64VarP(&opts.widthMM, "width", "w", 0, "ceiling width in mm (required)")
	cmd.Flags().Float64Var(&opts.perimeterGap, "perimeter-gap", 0, "perimeter gap in mm")
	cmd.Flags().Float64Var(&opts.panelGap, "panel-gap", 0, "inter-panel gap in mm")
	cmd.Flags().Float64Var(&opts.targetRatio, "ratio", 1.0, "target panel width/length aspect ratio")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "scoring strategy: balanced or minimize_seams")
	cmd.Flags().BoolVar(&opts.genetic, "genetic", false, "use the stochastic genetic search")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for the genetic search (0 = time-based)")
	cmd.Flags().IntVarP(&opts.alternates, "alternates", "n", engine.DefaultAlternateCount, "number of ranked candidates to show")
	cmd.Flags().Float64Var(&opts.sparePercent, "spares", 10, "spare percentage for the purchase estimate")
	cmd.Flags().Float64Var(&opts.pricePerPanel, "price", 0, "price per panel; enables the purchase estimate")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "emit JSON instead of styled text")

	_ = cmd.MarkFlagRequired("length")
	_ = cmd.MarkFlagRequired("width")

	return cmd
}
