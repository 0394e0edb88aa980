// Package chart builds the data contract for the charting collaborator: the
// baseline and post-intervention risks as two labeled bars plus the axis
// caption.
package chart

import "cvdrisk-engine/internal/model"

// Bar colors: red for baseline risk, green for post-intervention risk.
const (
	baselineColor = "#CC4444"
	finalColor    = "#44CC44"
)

type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

type Payload struct {
	Bars      []Bar  `json:"bars"`
	AxisLabel string `json:"axis_label"`
}

// FromResult builds the baseline-vs-final bar payload for one calculation.
func FromResult(res *model.CalculationResult, horizon model.Horizon) Payload {
	return Payload{
		Bars: []Bar{
			{Label: "Baseline", Value: res.BaselineRiskPct, Color: baselineColor},
			{Label: "After", Value: res.FinalRiskPct, Color: finalColor},
		},
		AxisLabel: string(horizon) + " CVD Risk (%)",
	}
}
