// Package catalog holds the reference effect tables shared read-only by all
// calculations: non-lipid intervention effects and lipid-lowering therapy
// effects. Tables are built once at process start and never written after.
package catalog

// Intervention is one non-lipid intervention with its relative risk reduction
// at the five-year and lifetime horizons. Ten-year calculations use the
// lifetime effect sizes; there is no separate ten-year effect table.
type Intervention struct {
	Name        string  `json:"name"`
	RRRFiveYear float64 `json:"rrr_5yr_pct"`
	RRRLifetime float64 `json:"rrr_lifetime_pct"`
}

// Therapy is one lipid-lowering agent with its percent LDL reduction as
// monotherapy.
type Therapy struct {
	Name         string  `json:"name"`
	LDLReduction float64 `json:"ldl_reduction_pct"`
}

type Catalog struct {
	Interventions []Intervention `json:"interventions"`
	Therapies     []Therapy      `json:"therapies"`
}

// Default returns the built-in effect tables.
func Default() Catalog {
	return Catalog{
		Interventions: []Intervention{
			{Name: "Smoking cessation", RRRFiveYear: 5, RRRLifetime: 17},
			{Name: "Antiplatelet (ASA or clopidogrel)", RRRFiveYear: 2, RRRLifetime: 6},
			{Name: "BP control (ACEi/ARB ± CCB)", RRRFiveYear: 4, RRRLifetime: 12},
			{Name: "Semaglutide 2.4 mg", RRRFiveYear: 1, RRRLifetime: 4},
			{Name: "Weight loss to ideal BMI", RRRFiveYear: 3, RRRLifetime: 10},
			{Name: "Empagliflozin", RRRFiveYear: 2, RRRLifetime: 6},
			{Name: "Icosapent ethyl (TG ≥1.5)", RRRFiveYear: 2, RRRLifetime: 5},
			{Name: "Mediterranean diet", RRRFiveYear: 3, RRRLifetime: 9},
			{Name: "Physical activity", RRRFiveYear: 3, RRRLifetime: 9},
			{Name: "Alcohol moderation", RRRFiveYear: 2, RRRLifetime: 5},
			{Name: "Stress reduction", RRRFiveYear: 1, RRRLifetime: 3},
		},
		Therapies: []Therapy{
			{Name: "Atorvastatin 20 mg", LDLReduction: 40},
			{Name: "Atorvastatin 80 mg", LDLReduction: 50},
			{Name: "Rosuvastatin 10 mg", LDLReduction: 40},
			{Name: "Rosuvastatin 20–40 mg", LDLReduction: 55},
			{Name: "Simvastatin 40 mg", LDLReduction: 35},
			{Name: "Ezetimibe", LDLReduction: 20},
			{Name: "PCSK9 inhibitor", LDLReduction: 60},
			{Name: "Bempedoic acid", LDLReduction: 18},
		},
	}
}

// Intervention looks up a non-lipid intervention by name.
func (c Catalog) Intervention(name string) (Intervention, bool) {
	for _, iv := range c.Interventions {
		if iv.Name == name {
			return iv, true
		}
	}
	return Intervention{}, false
}

// Therapy looks up a lipid-lowering agent by name.
func (c Catalog) Therapy(name string) (Therapy, bool) {
	for _, t := range c.Therapies {
		if t.Name == name {
			return t, true
		}
	}
	return Therapy{}, false
}
