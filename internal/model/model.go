package model

// CeilingDimensions is the outer boundary to cover, in millimeters.
// Supplied by the caller and never mutated by the engine.
type CeilingDimensions struct {
	LengthMM float64 `json:"length_mm"`
	WidthMM  float64 `json:"width_mm"`
}

// AreaSqm returns the ceiling area in square meters.
func (c CeilingDimensions) AreaSqm() float64 {
	return c.LengthMM * c.WidthMM / 1e6
}

// PanelSpacing holds the gap configuration for a layout calculation.
// PerimeterGapMM is the margin reserved on all four edges; PanelGapMM is
// the uniform gap between adjacent panels along both axes.
type PanelSpacing struct {
	PerimeterGapMM float64 `json:"perimeter_gap_mm"`
	PanelGapMM     float64 `json:"panel_gap_mm"`
}

// PanelLayout is one concrete subdivision of the ceiling into a grid of
// equal panels. Rows subdivide the length axis and columns the width axis,
// so PanelsPerColumn is the row count and PanelsPerRow the column count.
// All fields are derived at construction and never edited; identical
// inputs always produce an identical layout.
type PanelLayout struct {
	PanelWidthMM     float64 `json:"panel_width_mm"`
	PanelLengthMM    float64 `json:"panel_length_mm"`
	PanelsPerRow     int     `json:"panels_per_row"`
	PanelsPerColumn  int     `json:"panels_per_column"`
	TotalPanels      int     `json:"total_panels"`
	TotalCoverageSqm float64 `json:"total_coverage_sqm"`
	GapAreaSqm       float64 `json:"gap_area_sqm"`
}

// NewPanelLayout builds a layout for rows x cols panels of the given
// dimensions within a ceiling. rows counts panels along the length axis,
// cols along the width axis.
func NewPanelLayout(ceiling CeilingDimensions, panelLengthMM, panelWidthMM float64, rows, cols int) PanelLayout {
	total := rows * cols
	coverage := panelWidthMM * panelLengthMM * float64(total) / 1e6
	return PanelLayout{
		PanelWidthMM:     panelWidthMM,
		PanelLengthMM:    panelLengthMM,
		PanelsPerRow:     cols,
		PanelsPerColumn:  rows,
		TotalPanels:      total,
		TotalCoverageSqm: coverage,
		GapAreaSqm:       ceiling.AreaSqm() - coverage,
	}
}

// PanelAreaSqm returns the area of a single panel in square meters.
func (l PanelLayout) PanelAreaSqm() float64 {
	return l.PanelWidthMM * l.PanelLengthMM / 1e6
}

// Strategy selects the scoring weight curve used to rank candidate layouts.
type Strategy string

const (
	StrategyBalanced      Strategy = "balanced"       // Practical 4-16 panel band earns full bonus
	StrategyMinimizeSeams Strategy = "minimize_seams" // Monotonic preference for fewer panels
)

// ParseStrategy maps a strategy name to a Strategy. "minimize_panels" is an
// accepted alias for minimize_seams; anything else falls back to balanced.
func ParseStrategy(name string) Strategy {
	switch name {
	case string(StrategyMinimizeSeams), "minimize_panels":
		return StrategyMinimizeSeams
	default:
		return StrategyBalanced
	}
}

// Algorithm selects the search algorithm to use.
type Algorithm string

const (
	AlgorithmExhaustive Algorithm = "exhaustive" // Deterministic full enumeration (fast at this scale)
	AlgorithmGenetic    Algorithm = "genetic"    // Stochastic population search
)

// GeneticConfig holds parameters for the genetic search variant.
type GeneticConfig struct {
	PopulationSize int     `json:"population_size" toml:"population_size"`
	Generations    int     `json:"generations" toml:"generations"`
	MutationRate   float64 `json:"mutation_rate" toml:"mutation_rate"`
	TournamentSize int     `json:"tournament_size" toml:"tournament_size"`
	// Seed for the random source. Zero means time-seeded, so repeat runs
	// may differ; fix a non-zero seed for reproducible results.
	Seed int64 `json:"seed" toml:"seed"`
}

// DefaultGeneticConfig returns sensible default parameters.
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize: 50,
		Generations:    100,
		MutationRate:   0.1,
		TournamentSize: 3,
	}
}

// SearchSettings holds the layout search configuration.
type SearchSettings struct {
	Algorithm         Algorithm     `json:"algorithm"`
	Strategy          Strategy      `json:"strategy"`
	TargetAspectRatio float64       `json:"target_aspect_ratio"` // Desired panel width/length ratio
	Genetic           GeneticConfig `json:"genetic"`
}

func DefaultSettings() SearchSettings {
	return SearchSettings{
		Algorithm:         AlgorithmExhaustive,
		Strategy:          StrategyBalanced,
		TargetAspectRatio: 1.0,
		Genetic:           DefaultGeneticConfig(),
	}
}
