// Package testutil provides reusable test helper functions for hash tests.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
)

type tHelper interface {
	Helper()
}

func helper(t assert.TestingT) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
}

// Tolerances shared across hash quality tests.
const (
	// IdealMean is the mean of U(0,1).
	IdealMean = 0.5

	// IdealVariance is the variance of U(0,1).
	IdealVariance = 1.0 / 12.0

	// LooseTolerance bounds first and second moments of reduced-round sweeps.
	LooseTolerance = 0.01

	// MergeTolerance bounds differences between sharded and sequential sums.
	MergeTolerance = 1e-9
)

// AssertUnitPair verifies that both components of a hash result lie in [0, 1].
func AssertUnitPair(t assert.TestingT, x, y float32, msgAndArgs ...any) bool {
	helper(t)
	ok := AssertInRange(t, float64(x), 0, 1, msgAndArgs...)
	return AssertInRange(t, float64(y), 0, 1, msgAndArgs...) && ok
}

// AssertAllInUnitRange verifies that no element is NaN, Inf, or outside [0, 1].
func AssertAllInUnitRange(t assert.TestingT, s []float32, msgAndArgs ...any) bool {
	helper(t)
	for i, v := range s {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > 1 {
			return assert.Fail(t,
				fmt.Sprintf("s[%d]=%f is outside [0, 1]", i, f), msgAndArgs...)
		}
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t assert.TestingT, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	helper(t)
	if value < minVal || value > maxVal {
		return assert.Fail(t,
			fmt.Sprintf("value %f is outside range [%f, %f]", value, minVal, maxVal), msgAndArgs...)
	}
	return true
}

// AssertCloserTo verifies that better is strictly closer to target than worse.
func AssertCloserTo(t assert.TestingT, target, better, worse float64, msgAndArgs ...any) bool {
	helper(t)
	return assert.Less(t, math.Abs(better-target), math.Abs(worse-target), msgAndArgs...)
}

// AssertBitIdentical verifies that two float32 values have the same bit pattern.
func AssertBitIdentical(t assert.TestingT, expected, actual float32, msgAndArgs ...any) bool {
	helper(t)
	return assert.Equal(t, math.Float32bits(expected), math.Float32bits(actual), msgAndArgs...)
}
