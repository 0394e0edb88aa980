package risk

import (
	"math"

	"cvdrisk-engine/internal/catalog"
	"cvdrisk-engine/internal/model"
)

// Slopes and caps for the risk-factor-derived reductions. Each cap bounds its
// own factor before application and is independent of the other factors.
const (
	ldlSlopePerMmol = 22.0
	ldlCapPct       = 35.0

	bpSlopePer10mmHg = 15.0
	bpCapPct         = 20.0

	hba1cSlopePerPct = 9.0 // UKPDS: ~9% RRR per 1% HbA1c above 7%
	hba1cCapPct      = 30.0
	hba1cThreshold   = 7.0
)

// StackInput carries the capped baseline and every factor source the stacking
// engine combines.
type StackInput struct {
	BaselineRiskPct float64
	Interventions   []string
	BaselineLDL     float64
	ProjectedLDL    float64
	CurrentSBP      float64
	TargetSBP       float64
	HbA1c           float64
	Horizon         model.Horizon
}

// FinalRisk stacks all relative risk reductions multiplicatively onto the
// capped baseline and returns the post-intervention risk in percent, rounded
// to one decimal. Evaluation order is fixed (non-lipid interventions, LDL,
// BP, glycaemic) for reproducibility; because every step is an independent
// multiplication the numeric result is order-invariant.
func FinalRisk(cat catalog.Catalog, in StackInput) float64 {
	remaining := in.BaselineRiskPct / 100

	for _, name := range in.Interventions {
		iv, ok := cat.Intervention(name)
		if !ok {
			continue
		}
		effect := iv.RRRLifetime
		if in.Horizon == model.HorizonFiveYear {
			effect = iv.RRRFiveYear
		}
		remaining = applyReduction(remaining, effect, 100)
	}

	if in.ProjectedLDL < in.BaselineLDL {
		drop := in.BaselineLDL - in.ProjectedLDL
		remaining = applyReduction(remaining, ldlSlopePerMmol*drop, ldlCapPct)
	}

	if in.TargetSBP < in.CurrentSBP {
		drop := in.CurrentSBP - in.TargetSBP
		remaining = applyReduction(remaining, bpSlopePer10mmHg*(drop/10), bpCapPct)
	}

	if in.HbA1c > hba1cThreshold {
		remaining = applyReduction(remaining, (in.HbA1c-hba1cThreshold)*hba1cSlopePerPct, hba1cCapPct)
	}

	return round1(remaining * 100)
}

// applyReduction multiplies the surviving probability by one relative risk
// reduction, capping the reduction before it is applied.
func applyReduction(probability, reductionPct, capPct float64) float64 {
	return probability * (1 - math.Min(reductionPct, capPct)/100)
}
