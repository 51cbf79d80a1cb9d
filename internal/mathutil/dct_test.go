package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dctTolerance = 1e-12

// TestDCT2Matrix_Shape verifies matrix dimensions.
func TestDCT2Matrix_Shape(t *testing.T) {
	m := DCT2Matrix(128, 40)
	require.Len(t, m, 40)
	for _, row := range m {
		assert.Len(t, row, 128)
	}
}

// TestDCT2Matrix_Orthonormal verifies that the full square basis is orthonormal.
func TestDCT2Matrix_Orthonormal(t *testing.T) {
	const n = 16
	m := DCT2Matrix(n, n)

	for i := range n {
		for j := range n {
			var dot float64
			for k := range n {
				dot += m[i][k] * m[j][k]
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, dot, dctTolerance,
				"row %d · row %d should be %f", i, j, want)
		}
	}
}

// TestDCT2Matrix_DCComponent verifies that a constant input maps entirely
// onto the zeroth coefficient.
func TestDCT2Matrix_DCComponent(t *testing.T) {
	const n = 32
	m := DCT2Matrix(n, n)

	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0
	}

	for k := range n {
		var y float64
		for i := range n {
			y += m[k][i] * x[i]
		}
		if k == 0 {
			assert.InDelta(t, math.Sqrt(float64(n)), y, dctTolerance)
		} else {
			assert.InDelta(t, 0.0, y, 1e-10, "coefficient %d should vanish for DC input", k)
		}
	}
}
