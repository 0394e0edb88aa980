// Package engine orchestrates one stateless risk calculation per request:
// validation, baseline estimation, LDL projection, intervention stacking, and
// outcome metrics, wrapped in calculation metadata.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"cvdrisk-engine/internal/catalog"
	"cvdrisk-engine/internal/model"
	"cvdrisk-engine/internal/risk"
	"cvdrisk-engine/internal/validate"
)

type Engine struct {
	cat catalog.Catalog
}

func New(cat catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Catalog exposes the shared effect tables to the API surface.
func (e *Engine) Catalog() catalog.Catalog {
	return e.cat
}

// Process runs one calculation. Validation failures produce a FAILURE outcome
// with CRITICAL messages and no result; otherwise the result carries the full
// set of derived figures plus any WARNING messages.
func (e *Engine) Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	messages := validate.Request(e.cat, req)
	outcome := model.OutcomeSuccess
	var result *model.CalculationResult

	hasCritical := false
	for i := range messages {
		messages[i].ID = i
		if messages[i].Level == model.LevelCritical {
			hasCritical = true
		}
	}

	if hasCritical {
		outcome = model.OutcomeFailure
	} else {
		res, warnings := e.compute(req)
		for _, w := range warnings {
			w.ID = len(messages)
			messages = append(messages, w)
		}
		result = res
	}

	if messages == nil {
		messages = []model.CalculationMessage{}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			Horizon:                req.Horizon,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339Nano),
			CalculationCompletedAt: now.Format(time.RFC3339Nano),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationOutput{
			Messages: messages,
			Result:   result,
		},
	}
}

func (e *Engine) compute(req *model.CalculationRequest) (*model.CalculationResult, []model.CalculationMessage) {
	var warnings []model.CalculationMessage

	baseline, capped := risk.BaselineRisk(req.Profile, req.Horizon)
	if capped {
		warnings = append(warnings, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    "BASELINE_RISK_CAPPED",
			Message: fmt.Sprintf("Baseline risk capped at %g%% for the %s horizon", risk.RiskCap(req.Horizon), req.Horizon),
		})
	}

	projected := risk.ProjectLDL(e.cat, req.Profile.BaselineLDL, req.Therapies)

	final := risk.FinalRisk(e.cat, risk.StackInput{
		BaselineRiskPct: baseline,
		Interventions:   req.Interventions,
		BaselineLDL:     req.Profile.BaselineLDL,
		ProjectedLDL:    projected,
		CurrentSBP:      req.Profile.SystolicBP,
		TargetSBP:       req.Profile.TargetSBP,
		HbA1c:           req.Profile.HbA1c,
		Horizon:         req.Horizon,
	})

	arr, rrr := risk.Outcome(baseline, final)
	if arr < 0 {
		// Cannot happen while every stacking factor is <= 1; kept as a
		// tripwire for future model changes.
		warnings = append(warnings, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    "NEGATIVE_ARR",
			Message: "Post-intervention risk exceeds baseline; review model factors",
		})
	}

	return &model.CalculationResult{
		BaselineRiskPct: baseline,
		FinalRiskPct:    final,
		AbsoluteRRPp:    arr,
		RelativeRRPct:   rrr,
		ProjectedLDL:    projected,
	}, warnings
}
