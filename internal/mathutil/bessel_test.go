package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	besselTolerance = 1e-7
	betaTolerance   = 1e-6
)

// TestBesselI0_KnownValues verifies I₀ against reference values.
func TestBesselI0_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"zero", 0.0, 1.0},
		{"one", 1.0, 1.2660658777520082},
		{"two", 2.0, 2.2795853023360673},
		{"five", 5.0, 27.239871823604442},
		{"ten", 10.0, 2815.716628466254},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BesselI0(tt.x)
			relErr := math.Abs(got-tt.want) / tt.want
			assert.Less(t, relErr, besselTolerance,
				"I0(%f) = %g, want %g", tt.x, got, tt.want)
		})
	}
}

// TestBesselI0_Symmetry verifies I₀(x) = I₀(-x).
func TestBesselI0_Symmetry(t *testing.T) {
	for _, x := range []float64{0.5, 1.0, 3.0, 5.0, 20.0} {
		assert.Equal(t, BesselI0(x), BesselI0(-x), "I0 should be even at x=%f", x)
	}
}

// TestKaiserBeta_Regions checks the three regions of the Kaiser β formula.
func TestKaiserBeta_Regions(t *testing.T) {
	// Below 21 dB the window degenerates to rectangular.
	assert.Equal(t, 0.0, KaiserBeta(10.0))

	// Medium attenuation region.
	delta := 40.0 - 21.0
	want := 0.5842*math.Pow(delta, 0.4) + 0.07886*delta
	assert.InDelta(t, want, KaiserBeta(40.0), betaTolerance)

	// High attenuation region.
	assert.InDelta(t, 0.1102*(80.0-8.7), KaiserBeta(80.0), betaTolerance)
}

// TestKaiserBeta_Monotonic verifies β grows with attenuation.
func TestKaiserBeta_Monotonic(t *testing.T) {
	prev := KaiserBeta(21.0)
	for att := 22.0; att <= 150.0; att += 1.0 {
		beta := KaiserBeta(att)
		assert.GreaterOrEqual(t, beta, prev, "beta should be monotonic at att=%f", att)
		prev = beta
	}
}
