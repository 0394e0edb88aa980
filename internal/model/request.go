package model

// CalculationRequest is one complete "what-if" scenario: a patient profile
// plus the selected interventions, lipid-lowering therapy, and horizon.
type CalculationRequest struct {
	Profile       PatientProfile   `json:"profile"`
	Interventions []string         `json:"interventions"`
	Therapies     TherapySelection `json:"therapies"`
	Horizon       Horizon          `json:"horizon"`
}
