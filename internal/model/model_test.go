package model

import (
	"testing"
)

func TestNewPanelLayoutDerivedFields(t *testing.T) {
	ceiling := CeilingDimensions{LengthMM: 6000, WidthMM: 4500}
	layout := NewPanelLayout(ceiling, 1200, 1000, 4, 3)

	if layout.TotalPanels != 12 {
		t.Errorf("expected 12 total panels, got %d", layout.TotalPanels)
	}
	if layout.PanelsPerColumn != 4 || layout.PanelsPerRow != 3 {
		t.Errorf("expected 4 rows x 3 cols, got %d x %d", layout.PanelsPerColumn, layout.PanelsPerRow)
	}

	// 1200 x 1000 mm panel = 1.2 sqm, twelve of them = 14.4 sqm
	wantCoverage := 14.4
	if diff := layout.TotalCoverageSqm - wantCoverage; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected coverage %.2f sqm, got %.4f", wantCoverage, layout.TotalCoverageSqm)
	}

	wantGap := ceiling.AreaSqm() - wantCoverage
	if diff := layout.GapAreaSqm - wantGap; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected gap area %.2f sqm, got %.4f", wantGap, layout.GapAreaSqm)
	}
}

func TestCeilingAreaSqm(t *testing.T) {
	c := CeilingDimensions{LengthMM: 5000, WidthMM: 4000}
	if got := c.AreaSqm(); got != 20.0 {
		t.Errorf("expected 20 sqm, got %.4f", got)
	}
}

func TestParseStrategy(t *testing.T) {
	if ParseStrategy("minimize_seams") != StrategyMinimizeSeams {
		t.Error("minimize_seams should parse to StrategyMinimizeSeams")
	}
	if ParseStrategy("minimize_panels") != StrategyMinimizeSeams {
		t.Error("minimize_panels is an alias for StrategyMinimizeSeams")
	}
	if ParseStrategy("balanced") != StrategyBalanced {
		t.Error("balanced should parse to StrategyBalanced")
	}
	if ParseStrategy("something_else") != StrategyBalanced {
		t.Error("unknown names fall back to StrategyBalanced")
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Algorithm != AlgorithmExhaustive {
		t.Errorf("expected exhaustive default algorithm, got %s", s.Algorithm)
	}
	if s.Strategy != StrategyBalanced {
		t.Errorf("expected balanced default strategy, got %s", s.Strategy)
	}
	if s.TargetAspectRatio != 1.0 {
		t.Errorf("expected target ratio 1.0, got %.2f", s.TargetAspectRatio)
	}
	if s.Genetic.PopulationSize != 50 || s.Genetic.Generations != 100 {
		t.Errorf("unexpected genetic defaults: %+v", s.Genetic)
	}
}
