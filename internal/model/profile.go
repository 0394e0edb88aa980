package model

// Sex values accepted on the wire.
const (
	SexMale   = "male"
	SexFemale = "female"
)

// Horizon is the projection window for a calculation. It selects both the
// intervention effect sizes and the baseline risk ceiling.
type Horizon string

const (
	HorizonFiveYear Horizon = "5yr"
	HorizonTenYear  Horizon = "10yr"
	HorizonLifetime Horizon = "lifetime"
)

// PatientProfile is the immutable clinical input for one calculation.
// Numeric ranges are enforced by the validation layer before the core runs.
type PatientProfile struct {
	Age              float64 `json:"age"`
	Sex              string  `json:"sex"`
	SystolicBP       float64 `json:"systolic_bp_mmhg"`
	TotalCholesterol float64 `json:"total_cholesterol_mmol_l"`
	HDL              float64 `json:"hdl_mmol_l"`
	Smoker           bool    `json:"smoker"`
	Diabetes         bool    `json:"diabetes"`
	EGFR             float64 `json:"egfr_ml_min"`
	CRP              float64 `json:"hs_crp_mg_l"`
	VascularBeds     int     `json:"vascular_beds"`
	BaselineLDL      float64 `json:"baseline_ldl_mmol_l"`
	HbA1c            float64 `json:"hba1c_pct"`
	TargetSBP        float64 `json:"target_sbp_mmhg"`
}

// TherapySelection splits lipid-lowering therapy into pre-admission agents
// (full catalog effect) and add-on agents (half effect). The two sets must be
// disjoint; validation rejects overlap before the core runs.
type TherapySelection struct {
	PreAdmission []string `json:"pre_admission"`
	AddOn        []string `json:"add_on"`
}
