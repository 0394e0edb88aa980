package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvdrisk-engine/internal/model"
)

func TestFromResult(t *testing.T) {
	res := &model.CalculationResult{BaselineRiskPct: 34.6, FinalRiskPct: 13.6}
	payload := FromResult(res, model.HorizonTenYear)

	require.Len(t, payload.Bars, 2)
	assert.Equal(t, "Baseline", payload.Bars[0].Label)
	assert.InDelta(t, 34.6, payload.Bars[0].Value, 1e-9)
	assert.Equal(t, "#CC4444", payload.Bars[0].Color)

	assert.Equal(t, "After", payload.Bars[1].Label)
	assert.InDelta(t, 13.6, payload.Bars[1].Value, 1e-9)
	assert.Equal(t, "#44CC44", payload.Bars[1].Color)

	assert.Equal(t, "10yr CVD Risk (%)", payload.AxisLabel)
}

func TestFromResultHorizonCaption(t *testing.T) {
	res := &model.CalculationResult{}
	assert.Equal(t, "lifetime CVD Risk (%)", FromResult(res, model.HorizonLifetime).AxisLabel)
	assert.Equal(t, "5yr CVD Risk (%)", FromResult(res, model.HorizonFiveYear).AxisLabel)
}
