package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkoppen/ceilgrid/internal/engine"
	"github.com/mkoppen/ceilgrid/internal/model"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")
	colorRed   = lipgloss.Color("167")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel  = lipgloss.NewStyle().Foreground(colorDim)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleError  = lipgloss.NewStyle().Foreground(colorRed)
)

// renderLayout formats a layout as an aligned key/value block.
func renderLayout(layout model.PanelLayout, score float64) string {
	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "  %s %s\n", styleLabel.Render(fmt.Sprintf("%-16s", label)), styleValue.Render(value))
	}

	b.WriteString(styleTitle.Render("Optimal layout") + "\n")
	row("Grid", fmt.Sprintf("%d x %d (%d panels)", layout.PanelsPerColumn, layout.PanelsPerRow, layout.TotalPanels))
	row("Panel size", fmt.Sprintf("%.1f x %.1f mm", layout.PanelLengthMM, layout.PanelWidthMM))
	row("Coverage", fmt.Sprintf("%.2f sqm", layout.TotalCoverageSqm))
	row("Gap area", fmt.Sprintf("%.2f sqm", layout.GapAreaSqm))
	row("Score", styleNumber.Render(fmt.Sprintf("%.4f", score)))
	return b.String()
}

// renderAlternates formats the ranked candidate list below the winner.
func renderAlternates(alternates []engine.ScoredLayout) string {
	if len(alternates) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(styleTitle.Render("Alternates") + "\n")
	for i, cand := range alternates {
		l := cand.Layout
		fmt.Fprintf(&b, "  %s %s  %s\n",
			styleLabel.Render(fmt.Sprintf("#%d", i+1)),
			styleValue.Render(fmt.Sprintf("%d x %d panels %.0f x %.0f mm", l.PanelsPerColumn, l.PanelsPerRow, l.PanelLengthMM, l.PanelWidthMM)),
			styleNumber.Render(fmt.Sprintf("%.4f", cand.Score)),
		)
	}
	return b.String()
}

// renderComparison formats scenario comparison results side by side.
func renderComparison(results []engine.ComparisonResult) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Scenario comparison") + "\n")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(&b, "  %-22s %s\n", r.Scenario.Name, styleError.Render(r.Err.Error()))
			continue
		}
		fmt.Fprintf(&b, "  %-22s %s  %s\n",
			r.Scenario.Name,
			styleValue.Render(fmt.Sprintf("%d x %d panels, %.1f%% coverage", r.Layout.PanelsPerColumn, r.Layout.PanelsPerRow, r.CoveragePercent)),
			styleNumber.Render(fmt.Sprintf("score %.4f", r.Score)),
		)
	}
	return b.String()
}
