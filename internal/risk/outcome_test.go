package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeBasics(t *testing.T) {
	arr, rrr := Outcome(50, 40)
	assert.InDelta(t, 10.0, arr, 1e-9)
	assert.InDelta(t, 20.0, rrr, 1e-9)
}

func TestOutcomeRRRCeiling(t *testing.T) {
	// 45/50 would be 90%; reported RRR is capped at 75.
	arr, rrr := Outcome(50, 5)
	assert.InDelta(t, 45.0, arr, 1e-9)
	assert.InDelta(t, 75.0, rrr, 1e-9)
}

func TestOutcomeZeroBaseline(t *testing.T) {
	arr, rrr := Outcome(0, 0)
	assert.InDelta(t, 0.0, arr, 1e-9)
	assert.InDelta(t, 0.0, rrr, 1e-9)
}

func TestOutcomeIdentity(t *testing.T) {
	arr, rrr := Outcome(34.6, 34.6)
	assert.InDelta(t, 0.0, arr, 1e-9)
	assert.InDelta(t, 0.0, rrr, 1e-9)
}

func TestOutcomeRounding(t *testing.T) {
	arr, rrr := Outcome(34.6, 33.2)
	assert.InDelta(t, 1.4, arr, 1e-9)
	// 1.4 / 34.6 × 100 = 4.046… → 4.0
	assert.InDelta(t, 4.0, rrr, 1e-9)
}

func TestOutcomeNegativeARRSurfaced(t *testing.T) {
	arr, _ := Outcome(30, 31)
	assert.InDelta(t, -1.0, arr, 1e-9)
}
