package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvdrisk-engine/internal/model"
)

func TestCSVFlatRecord(t *testing.T) {
	req := &model.CalculationRequest{
		Profile: model.PatientProfile{
			Age:              60,
			Sex:              model.SexMale,
			SystolicBP:       145,
			TotalCholesterol: 5.0,
			HDL:              1.0,
			Smoker:           true,
			EGFR:             80,
			CRP:              2.0,
			VascularBeds:     1,
			BaselineLDL:      3.5,
			HbA1c:            7.0,
			TargetSBP:        120,
		},
		Interventions: []string{"Smoking cessation", "Physical activity"},
		Therapies: model.TherapySelection{
			PreAdmission: []string{"Atorvastatin 80 mg"},
			AddOn:        []string{"Ezetimibe", "Bempedoic acid"},
		},
		Horizon: model.HorizonTenYear,
	}
	res := &model.CalculationResult{
		BaselineRiskPct: 34.6,
		FinalRiskPct:    13.6,
		AbsoluteRRPp:    21.0,
		RelativeRRPct:   60.7,
		ProjectedLDL:    1.75,
	}

	body, err := CSV(req, res)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	head, row := records[0], records[1]
	require.Equal(t, len(head), len(row))
	assert.Equal(t, "Age", head[0])
	assert.Equal(t, "Projected LDL", head[len(head)-1])

	byColumn := map[string]string{}
	for i, name := range head {
		byColumn[name] = row[i]
	}

	assert.Equal(t, "60", byColumn["Age"])
	assert.Equal(t, "male", byColumn["Sex"])
	assert.Equal(t, "true", byColumn["Smoking"])
	assert.Equal(t, "false", byColumn["Diabetes"])
	assert.Equal(t, "1", byColumn["Vascular beds"])
	assert.Equal(t, "Atorvastatin 80 mg", byColumn["Pre-admission Tx"])
	assert.Equal(t, "Ezetimibe;Bempedoic acid", byColumn["Add-on Tx"])
	assert.Equal(t, "Smoking cessation;Physical activity", byColumn["Additional IVs"])
	assert.Equal(t, "10yr", byColumn["Horizon"])
	assert.Equal(t, "34.6", byColumn["Baseline risk (%)"])
	assert.Equal(t, "13.6", byColumn["Final risk (%)"])
	assert.Equal(t, "21", byColumn["ARR (pp)"])
	assert.Equal(t, "60.7", byColumn["RRR (%)"])
	assert.Equal(t, "1.75", byColumn["Projected LDL"])
}

func TestCSVEmptySelections(t *testing.T) {
	req := &model.CalculationRequest{Horizon: model.HorizonLifetime}
	req.Profile.Sex = model.SexFemale

	body, err := CSV(req, &model.CalculationResult{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Contains(t, records[1], "lifetime")
}
