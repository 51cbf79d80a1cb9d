// Package window provides analysis window functions for spectral transforms.
package window

import (
	"math"

	"github.com/tphakala/go-audio-spectral/internal/mathutil"
	"github.com/tphakala/simd/f64"
)

const (
	// twoPi is the full-circle constant used by the raised-cosine windows.
	twoPi = 2.0 * math.Pi

	// Raised-cosine coefficients.
	hannCoeff     = 0.5
	hammingCoeffA = 0.54
	hammingCoeffB = 0.46

	// Center tap for degenerate single-sample windows.
	singleTapValue = 1.0

	// halfDivisor is used for finding center positions in symmetric windows.
	halfDivisor = 2.0
)

// Hann generates a Hann window of the given length.
//
// When periodic is true the window is suitable for spectral analysis with
// overlapping frames: it equals the first length samples of a symmetric
// Hann window of length+1. STFT-based transforms use the periodic form;
// filter design uses the symmetric form.
func Hann(length int, periodic bool) []float64 {
	return raisedCosine(length, periodic, hannCoeff, hannCoeff)
}

// Hamming generates a Hamming window of the given length.
// The periodic flag has the same meaning as for Hann.
func Hamming(length int, periodic bool) []float64 {
	return raisedCosine(length, periodic, hammingCoeffA, hammingCoeffB)
}

// raisedCosine computes a - b*cos(2πn/N) over n = 0..length-1, where N is
// length for periodic windows and length-1 for symmetric ones.
func raisedCosine(length int, periodic bool, a, b float64) []float64 {
	if length < 1 {
		return []float64{}
	}
	w := make([]float64, length)
	if length == 1 {
		w[0] = singleTapValue
		return w
	}

	denom := float64(length - 1)
	if periodic {
		denom = float64(length)
	}

	for n := range length {
		w[n] = a - b*math.Cos(twoPi*float64(n)/denom)
	}
	return w
}

// Kaiser generates a symmetric Kaiser window of the specified length and
// β parameter.
//
// The Kaiser window provides excellent control over the trade-off between
// main lobe width and sidelobe level in the frequency domain. β is typically
// 0-15, where higher values mean more sidelobe attenuation but a wider main
// lobe; use mathutil.KaiserBeta to derive β from a target attenuation.
//
// The window is symmetric: w[i] = w[length-1-i].
func Kaiser(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}

	w := make([]float64, length)
	if length == 1 {
		w[0] = singleTapValue
		return w
	}

	// Kaiser formula:
	// w[n] = I₀(β * sqrt(1 - ((n - α)/α)²)) / I₀(β)
	// where α = (N-1)/2 and N is the window length
	alpha := float64(length-1) / halfDivisor
	i0Beta := mathutil.BesselI0(beta)

	for n := range length {
		x := (float64(n) - alpha) / alpha
		arg := beta * math.Sqrt(1.0-x*x)
		w[n] = mathutil.BesselI0(arg) / i0Beta
	}

	return w
}

// Normalize scales the window in place so its coefficients sum to 1.
// Useful when a window doubles as a smoothing kernel.
func Normalize(w []float64) {
	sum := f64.Sum(w)
	if sum == 0 {
		return
	}
	f64.Scale(w, w, 1.0/sum)
}
