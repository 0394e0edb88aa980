package model

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationOutput   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string  `json:"calculation_id"`
	Horizon                Horizon `json:"horizon"`
	CalculationStartedAt   string  `json:"calculation_started_at"`
	CalculationCompletedAt string  `json:"calculation_completed_at"`
	CalculationDurationMs  int64   `json:"calculation_duration_ms"`
	CalculationOutcome     string  `json:"calculation_outcome"`
}

type CalculationOutput struct {
	Messages []CalculationMessage `json:"messages"`
	Result   *CalculationResult   `json:"result"`
}

// CalculationResult holds the derived risk figures. Every field is computed
// fresh per invocation and never mutated afterwards.
type CalculationResult struct {
	BaselineRiskPct float64 `json:"baseline_risk_pct"`
	FinalRiskPct    float64 `json:"final_risk_pct"`
	AbsoluteRRPp    float64 `json:"absolute_risk_reduction_pp"`
	RelativeRRPct   float64 `json:"relative_risk_reduction_pct"`
	ProjectedLDL    float64 `json:"projected_ldl_mmol_l"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
