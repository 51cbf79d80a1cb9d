// Package testutil provides reusable test helpers for spectral transform tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance  = 1e-10
	SpectrumTolerance = 1e-5
	MelTolerance      = 5e-3
	DBTolerance       = 5e-3
	RelTolerance      = 1e-5
)

// AllClose reports whether |got - want| <= atol + rtol*|want| for a pair of
// scalars, the numpy allclose criterion.
func AllClose(got, want, atol, rtol float64) bool {
	return math.Abs(got-want) <= atol+rtol*math.Abs(want)
}

// AssertAllClose verifies that two vectors agree elementwise within
// atol + rtol*|want|. On failure it reports the maximum absolute deviation
// and the first offending index.
func AssertAllClose(t *testing.T, got, want []float64, atol, rtol float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}

	maxDev := 0.0
	firstBad := -1
	for i := range want {
		dev := math.Abs(got[i] - want[i])
		if dev > maxDev {
			maxDev = dev
		}
		if firstBad < 0 && !AllClose(got[i], want[i], atol, rtol) {
			firstBad = i
		}
	}

	if firstBad >= 0 {
		return assert.Fail(t, "vectors differ beyond tolerance",
			"first mismatch at [%d]: got %g, want %g (max deviation %g, atol %g, rtol %g)",
			firstBad, got[firstBad], want[firstBad], maxDev, atol, rtol)
	}
	return true
}

// AssertMatrixAllClose verifies that two frames × bins matrices agree
// elementwise within atol + rtol*|want|, reporting the maximum deviation on
// failure.
func AssertMatrixAllClose(t *testing.T, got, want [][]float64, atol, rtol float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}

	maxDev := 0.0
	badRow, badCol := -1, -1
	for i := range want {
		if len(got[i]) != len(want[i]) {
			return assert.Fail(t, "row length mismatch",
				"row %d: got %d columns, want %d", i, len(got[i]), len(want[i]))
		}
		for j := range want[i] {
			dev := math.Abs(got[i][j] - want[i][j])
			if dev > maxDev {
				maxDev = dev
			}
			if badRow < 0 && !AllClose(got[i][j], want[i][j], atol, rtol) {
				badRow, badCol = i, j
			}
		}
	}

	if badRow >= 0 {
		return assert.Fail(t, "matrices differ beyond tolerance",
			"first mismatch at [%d][%d]: got %g, want %g (max deviation %g, atol %g, rtol %g)",
			badRow, badCol, got[badRow][badCol], want[badRow][badCol], maxDev, atol, rtol)
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertMatrixNoNaNOrInf verifies a matrix contains only finite values.
func AssertMatrixNoNaNOrInf(t *testing.T, m [][]float64, msgAndArgs ...any) bool {
	t.Helper()
	for _, row := range m {
		if !AssertNoNaNOrInf(t, row, msgAndArgs...) {
			return false
		}
	}
	return true
}

// AssertSymmetric verifies that a slice is symmetric (s[i] == s[n-1-i]).
func AssertSymmetric(t *testing.T, s []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	n := len(s)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, s[i], s[j], tolerance,
			"slice not symmetric at i=%d: s[%d]=%f != s[%d]=%f", i, i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertCenterIsMax verifies that the center element is the maximum value.
func AssertCenterIsMax(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	if len(s) == 0 {
		return assert.Fail(t, "empty slice")
	}
	centerIdx := len(s) / 2
	centerValue := s[centerIdx]
	for i, v := range s {
		if v > centerValue {
			return assert.Fail(t, "center is not max",
				"s[%d]=%f > center s[%d]=%f", i, v, centerIdx, centerValue)
		}
	}
	return true
}
