package mathutil

import (
	"math"
)

// DCT2Matrix builds the orthonormal DCT-II basis as an nCoeffs × n matrix.
//
// Row k contains the k-th cosine basis vector:
//
//	M[k][n] = s(k) * cos(π * k * (2n + 1) / (2N))
//
// with s(0) = √(1/N) and s(k>0) = √(2/N), matching scipy's
// dct(type=2, norm='ortho'). Multiplying the matrix with a column of
// log-mel energies yields MFCC coefficients.
//
// nCoeffs must not exceed n; callers validate before building.
func DCT2Matrix(n, nCoeffs int) [][]float64 {
	matrix := make([][]float64, nCoeffs)

	scale0 := math.Sqrt(1.0 / float64(n))
	scale := math.Sqrt(halfDivisor / float64(n))

	for k := range nCoeffs {
		row := make([]float64, n)
		s := scale
		if k == 0 {
			s = scale0
		}
		for i := range n {
			row[i] = s * math.Cos(math.Pi*float64(k)*(float64(i)+dctHalfShift)/float64(n))
		}
		matrix[k] = row
	}

	return matrix
}
