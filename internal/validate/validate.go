// Package validate implements the input-collection checks: numeric ranges,
// selection subsets, and therapy-set disjointness. The calculation core
// assumes validated input and never re-checks.
package validate

import (
	"fmt"
	"math"

	"cvdrisk-engine/internal/catalog"
	"cvdrisk-engine/internal/model"
)

type rangeCheck struct {
	value float64
	min   float64
	max   float64
	code  string
	label string
}

// Request returns all validation messages for one calculation request. Any
// CRITICAL message fails the calculation before the core runs.
func Request(cat catalog.Catalog, req *model.CalculationRequest) []model.CalculationMessage {
	var msgs []model.CalculationMessage
	msgs = append(msgs, profile(&req.Profile)...)
	msgs = append(msgs, horizon(req.Horizon)...)
	msgs = append(msgs, selections(cat, req)...)
	return msgs
}

func profile(p *model.PatientProfile) []model.CalculationMessage {
	var msgs []model.CalculationMessage

	if p.Sex != model.SexMale && p.Sex != model.SexFemale {
		msgs = append(msgs, critical("INVALID_SEX",
			fmt.Sprintf("Sex must be %q or %q", model.SexMale, model.SexFemale)))
	}

	checks := []rangeCheck{
		{p.Age, 30, 90, "AGE_OUT_OF_RANGE", "Age (years)"},
		{p.SystolicBP, 80, 220, "SBP_OUT_OF_RANGE", "Systolic blood pressure (mmHg)"},
		{p.TotalCholesterol, 2.0, 10.0, "TOTAL_CHOL_OUT_OF_RANGE", "Total cholesterol (mmol/L)"},
		{p.HDL, 0.5, 3.0, "HDL_OUT_OF_RANGE", "HDL cholesterol (mmol/L)"},
		{p.EGFR, 15, 120, "EGFR_OUT_OF_RANGE", "eGFR (mL/min/1.73m²)"},
		{p.CRP, 0, 20, "CRP_OUT_OF_RANGE", "hs-CRP (mg/L)"},
		{p.BaselineLDL, 0.5, 6.0, "LDL_OUT_OF_RANGE", "Baseline LDL (mmol/L)"},
		{p.HbA1c, 5.0, 12.0, "HBA1C_OUT_OF_RANGE", "HbA1c (%)"},
		{p.TargetSBP, 80, 220, "TARGET_SBP_OUT_OF_RANGE", "Target SBP (mmHg)"},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) || c.value < c.min || c.value > c.max {
			msgs = append(msgs, critical(c.code,
				fmt.Sprintf("%s must be between %g and %g", c.label, c.min, c.max)))
		}
	}

	if p.VascularBeds < 0 || p.VascularBeds > 3 {
		msgs = append(msgs, critical("VASCULAR_BEDS_OUT_OF_RANGE",
			"Affected vascular bed count must be between 0 and 3"))
	}

	return msgs
}

func horizon(h model.Horizon) []model.CalculationMessage {
	switch h {
	case model.HorizonFiveYear, model.HorizonTenYear, model.HorizonLifetime:
		return nil
	}
	return []model.CalculationMessage{critical("INVALID_HORIZON",
		fmt.Sprintf("Horizon must be one of %q, %q, %q",
			model.HorizonFiveYear, model.HorizonTenYear, model.HorizonLifetime))}
}

func selections(cat catalog.Catalog, req *model.CalculationRequest) []model.CalculationMessage {
	var msgs []model.CalculationMessage

	// Selections are sets: a repeated name would stack the same effect twice
	// in the core, so duplicates are rejected here alongside unknown names.
	seen := make(map[string]bool, len(req.Interventions))
	for _, name := range req.Interventions {
		if _, ok := cat.Intervention(name); !ok {
			msgs = append(msgs, critical("UNKNOWN_INTERVENTION",
				fmt.Sprintf("Unknown intervention: %s", name)))
		}
		if seen[name] {
			msgs = append(msgs, critical("DUPLICATE_INTERVENTION",
				fmt.Sprintf("Intervention %s selected more than once", name)))
		}
		seen[name] = true
	}

	pre := make(map[string]bool, len(req.Therapies.PreAdmission))
	for _, name := range req.Therapies.PreAdmission {
		if _, ok := cat.Therapy(name); !ok {
			msgs = append(msgs, critical("UNKNOWN_THERAPY",
				fmt.Sprintf("Unknown lipid-lowering therapy: %s", name)))
		}
		if pre[name] {
			msgs = append(msgs, critical("DUPLICATE_THERAPY",
				fmt.Sprintf("Therapy %s selected more than once", name)))
		}
		pre[name] = true
	}
	addOn := make(map[string]bool, len(req.Therapies.AddOn))
	for _, name := range req.Therapies.AddOn {
		if _, ok := cat.Therapy(name); !ok {
			msgs = append(msgs, critical("UNKNOWN_THERAPY",
				fmt.Sprintf("Unknown lipid-lowering therapy: %s", name)))
		}
		if pre[name] {
			msgs = append(msgs, critical("THERAPY_OVERLAP",
				fmt.Sprintf("Therapy %s selected as both pre-admission and add-on", name)))
		}
		if addOn[name] {
			msgs = append(msgs, critical("DUPLICATE_THERAPY",
				fmt.Sprintf("Therapy %s selected more than once", name)))
		}
		addOn[name] = true
	}

	return msgs
}

func critical(code, message string) model.CalculationMessage {
	return model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    code,
		Message: message,
	}
}
