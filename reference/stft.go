package reference

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// ErrShortSignal indicates the signal is too short for reflect padding.
var ErrShortSignal = errors.New("signal too short for reflect padding")

// hannPeriodic computes a periodic Hann window: 0.5 - 0.5*cos(2πn/N).
func hannPeriodic(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2.0*math.Pi*float64(i)/float64(n))
	}
	return w
}

// reflectPad mirrors pad samples on each side of x without repeating the
// edge sample, numpy's "reflect" mode.
func reflectPad(x []float64, pad int) ([]float64, error) {
	n := len(x)
	if pad >= n {
		return nil, fmt.Errorf("%w: need more than %d samples, have %d", ErrShortSignal, pad, n)
	}
	out := make([]float64, n+2*pad)
	copy(out[pad:], x)
	for i := 1; i <= pad; i++ {
		out[pad-i] = x[i]
		out[pad+n-1+i] = x[n-1-i]
	}
	return out, nil
}

// Spectrogram computes a one-sided |STFT|^power spectrogram of x using
// centered frames, reflect padding and a periodic Hann window of nfft
// samples. The output is frame-major: out[i][k] is bin k of frame i.
func Spectrogram(x []float64, nfft, hop int, power float64) ([][]float64, error) {
	padded, err := reflectPad(x, nfft/2)
	if err != nil {
		return nil, err
	}

	win := hannPeriodic(nfft)
	bins := nfft/2 + 1
	numFrames := 1 + (len(padded)-nfft)/hop

	out := make([][]float64, numFrames)
	frame := make([]float64, nfft)
	for i := range numFrames {
		start := i * hop
		for j := range nfft {
			frame[j] = padded[start+j] * win[j]
		}

		spectrum := fft.FFTReal(frame)
		row := make([]float64, bins)
		for k := range bins {
			row[k] = math.Pow(cmplx.Abs(spectrum[k]), power)
		}
		out[i] = row
	}
	return out, nil
}
