// Package engine implements the panel layout search.
//
// Given ceiling dimensions and a spacing configuration it enumerates
// candidate row/column panel counts, rejects grids whose panels would be
// non-positive or exceed the maximum buildable panel size, scores the
// survivors under the selected strategy and returns the best layout plus
// a ranked list of alternates.
package engine

import (
	"math"
	"sort"

	"github.com/mkoppen/ceilgrid/internal/model"
)

// MaxPanelDimensionMM is the hard ceiling on panel size. Panels above this
// size are not buildable or transportable; it is not configurable per call.
const MaxPanelDimensionMM = 2400.0

// DefaultAlternateCount is the number of alternates returned when the
// caller does not ask for a specific count.
const DefaultAlternateCount = 5

// maxCountsPerAxis caps enumeration per axis to bound runtime.
const maxCountsPerAxis = 50

// ScoredLayout pairs a candidate layout with its heuristic score.
type ScoredLayout struct {
	Layout model.PanelLayout `json:"layout"`
	Score  float64           `json:"score"`
}

// Engine runs the layout search. Each Compute call is independent; the
// engine only retains the candidate list of the most recent call so that
// Alternates can rank them without recomputation.
type Engine struct {
	Settings model.SearchSettings

	candidates []ScoredLayout // sorted by score descending after Compute
}

func New(settings model.SearchSettings) *Engine {
	return &Engine{Settings: settings}
}

// Compute returns the highest-scoring valid layout for the given ceiling
// and spacing. It fails with *InvalidDimensionError, *InvalidSpacingError
// or *GapExceedsCeilingError on malformed input and *NoValidLayoutError
// when no candidate survives the size constraints. Inputs are never
// clamped; a call either yields a complete layout or an error.
func (e *Engine) Compute(ceiling model.CeilingDimensions, spacing model.PanelSpacing) (model.PanelLayout, error) {
	availLength, availWidth, err := availableInterior(ceiling, spacing)
	if err != nil {
		return model.PanelLayout{}, err
	}

	if e.Settings.Algorithm == model.AlgorithmGenetic {
		return e.computeGenetic(ceiling, spacing, availLength, availWidth)
	}
	return e.computeExhaustive(ceiling, spacing, availLength, availWidth)
}

// Alternates returns the top count candidates of the most recent Compute,
// ordered by descending score. A count <= 0 requests DefaultAlternateCount.
// Before any successful Compute the result is empty.
func (e *Engine) Alternates(count int) []ScoredLayout {
	if count <= 0 {
		count = DefaultAlternateCount
	}
	if count > len(e.candidates) {
		count = len(e.candidates)
	}
	out := make([]ScoredLayout, count)
	copy(out, e.candidates[:count])
	return out
}

// availableInterior validates the inputs and returns the usable interior
// span after subtracting the perimeter gap on both axes.
func availableInterior(ceiling model.CeilingDimensions, spacing model.PanelSpacing) (availLength, availWidth float64, err error) {
	if ceiling.LengthMM <= 0 || ceiling.WidthMM <= 0 {
		return 0, 0, &InvalidDimensionError{LengthMM: ceiling.LengthMM, WidthMM: ceiling.WidthMM}
	}
	if spacing.PerimeterGapMM < 0 || spacing.PanelGapMM < 0 {
		return 0, 0, &InvalidSpacingError{PerimeterGapMM: spacing.PerimeterGapMM, PanelGapMM: spacing.PanelGapMM}
	}
	availLength = ceiling.LengthMM - 2*spacing.PerimeterGapMM
	availWidth = ceiling.WidthMM - 2*spacing.PerimeterGapMM
	if availLength <= 0 || availWidth <= 0 {
		return 0, 0, &GapExceedsCeilingError{
			PerimeterGapMM:    spacing.PerimeterGapMM,
			AvailableLengthMM: availLength,
			AvailableWidthMM:  availWidth,
		}
	}
	return availLength, availWidth, nil
}

// practicalCountRange maps the available interior area to the panel count
// band considered practical for that room size. The band only biases the
// enumeration bounds; it does not hard-restrict which counts are tried.
func practicalCountRange(areaSqm float64) (minCount, maxCount int) {
	switch {
	case areaSqm < 5:
		return 1, 8
	case areaSqm < 20:
		return 4, 16
	case areaSqm < 50:
		return 8, 25
	default:
		return 12, 40
	}
}

// enumerationBounds returns the half-open [lo, hi) per-axis count range:
// a generous superset of the practical band, capped at maxCountsPerAxis.
func enumerationBounds(availLength, availWidth float64) (lo, hi int) {
	minCount, maxCount := practicalCountRange(availLength * availWidth / 1e6)
	lo = minCount / 2
	if lo < 1 {
		lo = 1
	}
	hi = maxCount * 2
	if hi > maxCountsPerAxis {
		hi = maxCountsPerAxis
	}
	return lo, hi
}

// score combines area efficiency, aspect-ratio fit and the strategy's
// panel-count preference into a single unitless figure. The constants are
// long-standing tuning values; changing them changes which layout wins, so
// they stay fixed.
func score(panelWidth, panelLength float64, totalPanels int, targetRatio float64, strategy model.Strategy, availLength, availWidth float64) float64 {
	baseEfficiency := (panelWidth * panelLength) / (availLength * availWidth)

	ratioError := math.Abs(panelWidth/panelLength - targetRatio)
	aspectPenalty := 1 / (1 + 0.5*ratioError)

	var countBonus float64
	switch strategy {
	case model.StrategyMinimizeSeams:
		countBonus = 1 / (1 + 0.01*float64(totalPanels))
	default:
		switch {
		case totalPanels < 4:
			countBonus = 0.5
		case totalPanels > 16:
			countBonus = 0.7
		default:
			countBonus = 1.0
		}
	}

	return baseEfficiency * aspectPenalty * countBonus
}

// computeExhaustive enumerates row counts (length axis) in the outer loop
// and column counts (width axis) in the inner loop. The first candidate
// reaching the maximum score wins, so results are deterministic for
// identical inputs.
func (e *Engine) computeExhaustive(ceiling model.CeilingDimensions, spacing model.PanelSpacing, availLength, availWidth float64) (model.PanelLayout, error) {
	lo, hi := enumerationBounds(availLength, availWidth)
	gap := spacing.PanelGapMM

	e.candidates = nil
	var best ScoredLayout
	found := false

	for rows := lo; rows < hi; rows++ {
		panelLength := (availLength - float64(rows-1)*gap) / float64(rows)
		if panelLength <= 0 || panelLength > MaxPanelDimensionMM {
			continue
		}
		for cols := lo; cols < hi; cols++ {
			panelWidth := (availWidth - float64(cols-1)*gap) / float64(cols)
			if panelWidth <= 0 || panelWidth > MaxPanelDimensionMM {
				continue
			}

			layout := model.NewPanelLayout(ceiling, panelLength, panelWidth, rows, cols)
			s := score(panelWidth, panelLength, layout.TotalPanels, e.Settings.TargetAspectRatio, e.Settings.Strategy, availLength, availWidth)
			e.candidates = append(e.candidates, ScoredLayout{Layout: layout, Score: s})

			if !found || s > best.Score {
				best = ScoredLayout{Layout: layout, Score: s}
				found = true
			}
		}
	}

	if !found {
		return model.PanelLayout{}, &NoValidLayoutError{MaxPanelMM: MaxPanelDimensionMM}
	}

	// Stable sort keeps enumeration order among equal scores, matching the
	// first-seen-wins tie break above.
	sort.SliceStable(e.candidates, func(i, j int) bool {
		return e.candidates[i].Score > e.candidates[j].Score
	})

	return best.Layout, nil
}

// ValidateLayout re-derives the total span covered by a layout (panels,
// inter-panel gaps and the perimeter gap on both sides) and reports
// whether both reconstructed totals match the ceiling within 1mm. Pure
// verification; the search itself never calls it.
func ValidateLayout(layout model.PanelLayout, ceiling model.CeilingDimensions, spacing model.PanelSpacing) bool {
	rows := float64(layout.PanelsPerColumn)
	cols := float64(layout.PanelsPerRow)

	totalLength := layout.PanelLengthMM*rows + (rows-1)*spacing.PanelGapMM + 2*spacing.PerimeterGapMM
	totalWidth := layout.PanelWidthMM*cols + (cols-1)*spacing.PanelGapMM + 2*spacing.PerimeterGapMM

	const toleranceMM = 1.0
	return math.Abs(totalLength-ceiling.LengthMM) <= toleranceMM &&
		math.Abs(totalWidth-ceiling.WidthMM) <= toleranceMM
}
