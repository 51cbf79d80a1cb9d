package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-audio-spectral/internal/mathutil"
	"github.com/tphakala/go-audio-spectral/internal/testutil"
)

const (
	windowTolerance = 1e-12

	testLength16  = 16
	testLength21  = 21
	testLength400 = 400
	testBeta8     = 8.0
)

// TestHann_Symmetric verifies symmetry of the symmetric Hann window.
func TestHann_Symmetric(t *testing.T) {
	w := Hann(testLength21, false)

	require.Len(t, w, testLength21)
	testutil.AssertSymmetric(t, w, windowTolerance)

	// Symmetric Hann is zero at both ends and peaks at 1 in the middle.
	assert.InDelta(t, 0.0, w[0], windowTolerance)
	assert.InDelta(t, 0.0, w[len(w)-1], windowTolerance)
	assert.InDelta(t, 1.0, w[testLength21/2], windowTolerance)
}

// TestHann_Periodic verifies that the periodic window equals the first N
// samples of a symmetric window of length N+1.
func TestHann_Periodic(t *testing.T) {
	periodic := Hann(testLength16, true)
	symmetric := Hann(testLength16+1, false)

	require.Len(t, periodic, testLength16)
	for i := range periodic {
		assert.InDelta(t, symmetric[i], periodic[i], windowTolerance,
			"periodic[%d] should equal symmetric[%d]", i, i)
	}
}

// TestHann_COLA verifies the constant-overlap-add property of the periodic
// Hann window at half-window overlap: shifted copies sum to a constant.
func TestHann_COLA(t *testing.T) {
	w := Hann(testLength400, true)
	hop := testLength400 / 2

	for i := range hop {
		sum := w[i] + w[i+hop]
		assert.InDelta(t, 1.0, sum, windowTolerance,
			"overlap-add sum should be constant at offset %d", i)
	}
}

// TestHamming_Endpoints verifies that Hamming does not reach zero.
func TestHamming_Endpoints(t *testing.T) {
	w := Hamming(testLength21, false)

	testutil.AssertSymmetric(t, w, windowTolerance)
	assert.InDelta(t, 0.08, w[0], 1e-10)
	assert.InDelta(t, 1.0, w[testLength21/2], windowTolerance)
}

// TestKaiser_Properties verifies symmetry and center behavior.
func TestKaiser_Properties(t *testing.T) {
	w := Kaiser(testLength21, testBeta8)

	require.Len(t, w, testLength21)
	testutil.AssertSymmetric(t, w, windowTolerance)
	testutil.AssertCenterIsMax(t, w)

	// Center value is I₀(β)/I₀(β) = 1.
	assert.InDelta(t, 1.0, w[testLength21/2], windowTolerance)

	// Endpoints equal 1/I₀(β).
	want := 1.0 / mathutil.BesselI0(testBeta8)
	assert.InDelta(t, want, w[0], windowTolerance)
}

// TestKaiser_BetaZeroIsRectangular verifies that β=0 degenerates to a
// rectangular window.
func TestKaiser_BetaZeroIsRectangular(t *testing.T) {
	w := Kaiser(testLength16, 0.0)
	for i, v := range w {
		assert.InDelta(t, 1.0, v, windowTolerance, "w[%d]", i)
	}
}

// TestWindows_EdgeCases tests degenerate lengths.
func TestWindows_EdgeCases(t *testing.T) {
	assert.Empty(t, Hann(0, false))
	assert.Empty(t, Kaiser(-1, testBeta8))
	assert.Equal(t, []float64{1.0}, Hann(1, true))
	assert.Equal(t, []float64{1.0}, Kaiser(1, testBeta8))
}

// TestNormalize verifies unit-sum scaling.
func TestNormalize(t *testing.T) {
	w := Hann(testLength21, false)
	Normalize(w)

	var sum float64
	for _, v := range w {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, windowTolerance)

	// All-zero input must not blow up.
	z := make([]float64, 4)
	Normalize(z)
	assert.True(t, math.Abs(z[0]) < windowTolerance)
}
