package risk

import "math"

// rrrCeiling bounds the reported relative risk reduction.
const rrrCeiling = 75.0

// Outcome derives the absolute risk reduction (percentage points) and the
// relative risk reduction (%) from the capped baseline and final risk, both
// rounded to one decimal. A zero baseline defines RRR as 0. A negative ARR is
// returned as-is; the engine surfaces it rather than suppressing it.
func Outcome(baselinePct, finalPct float64) (arr, rrr float64) {
	arr = round1(baselinePct - finalPct)
	if baselinePct == 0 {
		return arr, 0
	}
	rrr = round1(math.Min(arr/baselinePct*100, rrrCeiling))
	return arr, rrr
}
