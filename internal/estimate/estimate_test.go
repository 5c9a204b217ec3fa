package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkoppen/ceilgrid/internal/model"
)

func testLayout() model.PanelLayout {
	ceiling := model.CeilingDimensions{LengthMM: 6000, WidthMM: 4500}
	return model.NewPanelLayout(ceiling, 1250, 875, 4, 4)
}

func TestCalculatePurchase(t *testing.T) {
	est := CalculatePurchase(testLayout(), 10, 45.50)

	assert.Equal(t, 16, est.PanelsRequired)
	// ceil(16 * 1.10) = 18
	assert.Equal(t, 18, est.PanelsWithSpares)
	assert.InDelta(t, 1.09375, est.PanelAreaSqm, 1e-9)
	assert.InDelta(t, 17.5, est.TotalPanelAreaSqm, 1e-9)
	assert.InDelta(t, 18*45.50, est.EstimatedCost, 1e-9)
}

func TestCalculatePurchaseZeroSpares(t *testing.T) {
	est := CalculatePurchase(testLayout(), 0, 30)

	assert.Equal(t, est.PanelsRequired, est.PanelsWithSpares)
	assert.InDelta(t, 16*30.0, est.EstimatedCost, 1e-9)
}

func TestCalculatePurchaseNoPricing(t *testing.T) {
	est := CalculatePurchase(testLayout(), 15, 0)

	assert.Equal(t, 19, est.PanelsWithSpares) // ceil(16 * 1.15)
	assert.Zero(t, est.EstimatedCost)
}
