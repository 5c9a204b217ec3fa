// Package estimate turns a computed panel layout into purchasing numbers.
// It is a collaborator of the layout engine: it consumes a PanelLayout as
// an opaque value and never feeds back into the search.
package estimate

import (
	"math"

	"github.com/mkoppen/ceilgrid/internal/model"
)

// PurchaseEstimate holds the results of a panel purchasing calculation.
type PurchaseEstimate struct {
	PanelsRequired    int     `json:"panels_required"`      // Panels needed to populate the grid
	PanelAreaSqm      float64 `json:"panel_area_sqm"`       // Area of one panel (sqm)
	TotalPanelAreaSqm float64 `json:"total_panel_area_sqm"` // Area of all required panels (sqm)
	PanelsWithSpares  int     `json:"panels_with_spares"`   // Recommended order quantity including spares
	SparePercent      float64 `json:"spare_percent"`        // Spare factor applied (e.g., 10 for 10%)
	PricePerPanel     float64 `json:"price_per_panel"`      // Price used for estimation
	EstimatedCost     float64 `json:"estimated_cost"`       // Total cost of the recommended order
}

// CalculatePurchase computes how many panels to order for a layout.
// sparePercent adds breakage/cutting spares on top of the exact count;
// the recommended quantity never drops below the grid's panel count.
func CalculatePurchase(layout model.PanelLayout, sparePercent, pricePerPanel float64) PurchaseEstimate {
	required := layout.TotalPanels
	panelArea := layout.PanelAreaSqm()

	spareFactor := 1.0 + sparePercent/100.0
	withSpares := int(math.Ceil(float64(required) * spareFactor))
	if withSpares < required {
		withSpares = required
	}

	return PurchaseEstimate{
		PanelsRequired:    required,
		PanelAreaSqm:      panelArea,
		TotalPanelAreaSqm: panelArea * float64(required),
		PanelsWithSpares:  withSpares,
		SparePercent:      sparePercent,
		PricePerPanel:     pricePerPanel,
		EstimatedCost:     float64(withSpares) * pricePerPanel,
	}
}
