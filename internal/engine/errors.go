package engine

import "fmt"

// InvalidDimensionError reports a ceiling length or width that is not
// strictly positive.
type InvalidDimensionError struct {
	LengthMM float64
	WidthMM  float64
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("engine: ceiling dimensions must be positive, got %.1fmm x %.1fmm", e.LengthMM, e.WidthMM)
}

// InvalidSpacingError reports a negative gap value.
type InvalidSpacingError struct {
	PerimeterGapMM float64
	PanelGapMM     float64
}

func (e *InvalidSpacingError) Error() string {
	return fmt.Sprintf("engine: gaps must be non-negative, got perimeter %.1fmm, panel %.1fmm", e.PerimeterGapMM, e.PanelGapMM)
}

// GapExceedsCeilingError reports a perimeter gap that consumes the whole
// usable span on at least one axis.
type GapExceedsCeilingError struct {
	PerimeterGapMM    float64
	AvailableLengthMM float64
	AvailableWidthMM  float64
}

func (e *GapExceedsCeilingError) Error() string {
	return fmt.Sprintf("engine: perimeter gap %.1fmm leaves no usable interior (available span %.1fmm x %.1fmm)",
		e.PerimeterGapMM, e.AvailableLengthMM, e.AvailableWidthMM)
}

// NoValidLayoutError reports a search that produced zero candidates
// satisfying positivity and the maximum panel size constraint.
type NoValidLayoutError struct {
	MaxPanelMM float64
}

func (e *NoValidLayoutError) Error() string {
	return fmt.Sprintf("engine: no layout satisfies the %.0fmm maximum panel size; adjust ceiling dimensions or gaps", e.MaxPanelMM)
}
