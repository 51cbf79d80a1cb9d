package spectral

import (
	"github.com/tphakala/go-audio-spectral/internal/mathutil"
	"github.com/tphakala/go-audio-spectral/internal/window"
)

// Window generators for SpectrogramConfig.Window. All STFT-oriented windows
// here are periodic; pass the result with a matching WinLength.

// HannWindow returns a periodic Hann window of the given length, the default
// analysis window of every transform in this package.
func HannWindow(length int) []float64 {
	return window.Hann(length, true)
}

// HammingWindow returns a periodic Hamming window of the given length.
func HammingWindow(length int) []float64 {
	return window.Hamming(length, true)
}

// KaiserWindow returns a Kaiser window of the given length and β. Use
// KaiserBeta to derive β from a target sidelobe attenuation.
func KaiserWindow(length int, beta float64) []float64 {
	return window.Kaiser(length, beta)
}

// KaiserBeta converts a stopband attenuation in dB to the Kaiser β parameter.
func KaiserBeta(attenuation float64) float64 {
	return mathutil.KaiserBeta(attenuation)
}
