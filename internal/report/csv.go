// Package report serializes a calculation (inputs plus result) to a flat CSV
// record for download.
package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"cvdrisk-engine/internal/model"
)

// Filename is the suggested download name for the report.
const Filename = "cvd_report.csv"

var header = []string{
	"Age", "Sex", "Smoking", "Diabetes", "eGFR", "Vascular beds",
	"Total Chol", "HDL", "hs-CRP", "Baseline LDL",
	"Pre-admission Tx", "Add-on Tx", "SBP cur", "SBP tgt",
	"Additional IVs", "HbA1c", "Horizon",
	"Baseline risk (%)", "Final risk (%)", "ARR (pp)", "RRR (%)", "Projected LDL",
}

// CSV renders one calculation as a header row plus a single flat record.
// Therapy and intervention selections are semicolon-joined.
func CSV(req *model.CalculationRequest, res *model.CalculationResult) ([]byte, error) {
	p := &req.Profile
	record := []string{
		num(p.Age),
		p.Sex,
		strconv.FormatBool(p.Smoker),
		strconv.FormatBool(p.Diabetes),
		num(p.EGFR),
		strconv.Itoa(p.VascularBeds),
		num(p.TotalCholesterol),
		num(p.HDL),
		num(p.CRP),
		num(p.BaselineLDL),
		strings.Join(req.Therapies.PreAdmission, ";"),
		strings.Join(req.Therapies.AddOn, ";"),
		num(p.SystolicBP),
		num(p.TargetSBP),
		strings.Join(req.Interventions, ";"),
		num(p.HbA1c),
		string(req.Horizon),
		num(res.BaselineRiskPct),
		num(res.FinalRiskPct),
		num(res.AbsoluteRRPp),
		num(res.RelativeRRPct),
		strconv.FormatFloat(res.ProjectedLDL, 'f', 2, 64),
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.Write(record); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
