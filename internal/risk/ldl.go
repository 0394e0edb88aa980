package risk

import (
	"math"

	"cvdrisk-engine/internal/catalog"
	"cvdrisk-engine/internal/model"
)

const (
	// ldlFloor is the clinical floor for projected LDL; stacking agents can
	// never take the projection below it.
	ldlFloor = 1.0

	// addOnScale halves add-on therapy effect to model diminishing returns on
	// top of pre-admission therapy.
	addOnScale = 0.5
)

// ProjectLDL applies pre-admission therapies at full catalog effect, floors
// the intermediate result, then applies add-on therapies at half effect and
// floors again. Each therapy is an independent multiplicative factor, so the
// order within a set never changes the result. Unknown names are skipped;
// validation rejects them before the core runs.
func ProjectLDL(cat catalog.Catalog, baselineLDL float64, sel model.TherapySelection) float64 {
	ldl := baselineLDL
	for _, name := range sel.PreAdmission {
		if t, ok := cat.Therapy(name); ok {
			ldl *= 1 - t.LDLReduction/100
		}
	}
	ldl = math.Max(ldl, ldlFloor)

	for _, name := range sel.AddOn {
		if t, ok := cat.Therapy(name); ok {
			ldl *= 1 - (t.LDLReduction/100)*addOnScale
		}
	}
	return math.Max(ldl, ldlFloor)
}
