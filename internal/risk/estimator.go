// Package risk implements the calculation core: the baseline risk estimator,
// the LDL projection model, the multiplicative intervention stacking, and the
// outcome metrics. Everything here is a pure function of its inputs.
package risk

import (
	"math"

	"cvdrisk-engine/internal/model"
)

// Linear predictor weights for the recurrent-event model. These are fixed
// model parameters, never re-derived at runtime.
const (
	weightAge       = 0.064
	weightMale      = 0.34
	weightSBP       = 0.02
	weightTotalChol = 0.25
	weightHDL       = -0.25
	weightSmoker    = 0.44
	weightDiabetes  = 0.51
	weightEGFR      = -0.2 // per 10 mL/min/1.73m²
	weightLogCRP    = 0.25
	weightVascular  = 0.4

	baselineSurvival = 0.900
	predictorOffset  = 5.8
)

var riskCaps = map[model.Horizon]float64{
	model.HorizonFiveYear: 80,
	model.HorizonTenYear:  85,
	model.HorizonLifetime: 90,
}

// TenYearRisk converts a profile into a 10-year event probability in percent,
// rounded to one decimal. A CRP of 0 is accepted: the log term is ln(crp+1),
// which degenerates to 0.
func TenYearRisk(p model.PatientProfile) float64 {
	male := 0.0
	if p.Sex == model.SexMale {
		male = 1
	}
	smoker := 0.0
	if p.Smoker {
		smoker = 1
	}
	diabetes := 0.0
	if p.Diabetes {
		diabetes = 1
	}

	lp := weightAge*p.Age +
		weightMale*male +
		weightSBP*p.SystolicBP +
		weightTotalChol*p.TotalCholesterol +
		weightHDL*p.HDL +
		weightSmoker*smoker +
		weightDiabetes*diabetes +
		weightEGFR*(p.EGFR/10) +
		weightLogCRP*math.Log(p.CRP+1) +
		weightVascular*float64(p.VascularBeds)

	risk10 := 1 - math.Pow(baselineSurvival, math.Exp(lp-predictorOffset))
	return round1(risk10 * 100)
}

// FiveYearFromTenYear derives the 5-year probability from the 10-year figure
// under a constant-hazard survival assumption, rounded to one decimal. There
// is no independent five-year model.
func FiveYearFromTenYear(risk10 float64) float64 {
	p := risk10 / 100
	return round1((1 - math.Pow(1-p, 0.5)) * 100)
}

// BaselineRisk selects the horizon baseline and caps it at the horizon
// ceiling. The lifetime horizon reuses the 10-year figure pre-cap; only the
// ceiling and the effect sizes downstream differ. The second return reports
// whether the cap was applied.
func BaselineRisk(p model.PatientProfile, horizon model.Horizon) (float64, bool) {
	baseline := TenYearRisk(p)
	if horizon == model.HorizonFiveYear {
		baseline = FiveYearFromTenYear(baseline)
	}
	cap := riskCaps[horizon]
	if baseline > cap {
		return cap, true
	}
	return baseline, false
}

// RiskCap returns the baseline ceiling for a horizon.
func RiskCap(horizon model.Horizon) float64 {
	return riskCaps[horizon]
}

// round1 rounds to one decimal, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
