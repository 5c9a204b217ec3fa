package engine

import (
	"fmt"

	"github.com/mkoppen/ceilgrid/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.SearchSettings
}

// ComparisonResult holds the layout and computed statistics for a single
// scenario. Err is set when the scenario produced no valid layout.
type ComparisonResult struct {
	Scenario        ComparisonScenario
	Layout          model.PanelLayout
	Score           float64
	CoveragePercent float64
	Err             error
}

// CompareScenarios runs the layout search for each scenario against the
// same ceiling and spacing, returning results in scenario order. This
// enables side-by-side comparison of strategies and algorithms.
func CompareScenarios(scenarios []ComparisonScenario, ceiling model.CeilingDimensions, spacing model.PanelSpacing) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		eng := New(scenario.Settings)
		layout, err := eng.Compute(ceiling, spacing)
		if err != nil {
			results = append(results, ComparisonResult{Scenario: scenario, Err: err})
			continue
		}

		var best float64
		if top := eng.Alternates(1); len(top) > 0 {
			best = top[0].Score
		}

		coverage := 0.0
		if area := ceiling.AreaSqm(); area > 0 {
			coverage = layout.TotalCoverageSqm / area * 100.0
		}

		results = append(results, ComparisonResult{
			Scenario:        scenario,
			Layout:          layout,
			Score:           best,
			CoveragePercent: coverage,
		})
	}

	return results
}

// BuildDefaultScenarios generates comparison scenarios based on the current
// settings, varying the strategy and algorithm to show what-if alternatives.
func BuildDefaultScenarios(baseSettings model.SearchSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: baseSettings,
		},
	}

	// Scenario: the other strategy
	altStrategy := baseSettings
	if baseSettings.Strategy == model.StrategyMinimizeSeams {
		altStrategy.Strategy = model.StrategyBalanced
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Balanced Strategy",
			Settings: altStrategy,
		})
	} else {
		altStrategy.Strategy = model.StrategyMinimizeSeams
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Minimize Seams",
			Settings: altStrategy,
		})
	}

	// Scenario: the other algorithm
	altAlgo := baseSettings
	if baseSettings.Algorithm == model.AlgorithmExhaustive {
		altAlgo.Algorithm = model.AlgorithmGenetic
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Genetic Algorithm",
			Settings: altAlgo,
		})
	} else {
		altAlgo.Algorithm = model.AlgorithmExhaustive
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Exhaustive Search",
			Settings: altAlgo,
		})
	}

	// Scenario: square panels, if the target differs
	if baseSettings.TargetAspectRatio != 1.0 {
		square := baseSettings
		square.TargetAspectRatio = 1.0
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Square Panels (was %.2f)", baseSettings.TargetAspectRatio),
			Settings: square,
		})
	}

	return scenarios
}
