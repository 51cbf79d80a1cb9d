// Package stft implements the centered short-time Fourier transform used by
// the spectral transforms.
package stft

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Errors returned by the STFT.
var (
	// ErrInvalidParams indicates invalid transform parameters.
	ErrInvalidParams = errors.New("invalid stft parameters")

	// ErrSignalTooShort indicates the input signal cannot fill a single frame.
	ErrSignalTooShort = errors.New("signal too short for stft frame")
)

// Transform computes one-sided short-time Fourier transforms with centered
// frames and reflect padding, the convention shared by torch-style and
// librosa-style spectrogram pipelines.
//
// A Transform instance precomputes the FFT plan and may be reused across
// signals. It is not safe for concurrent use; create one per goroutine.
type Transform struct {
	nfft   int
	hop    int
	window []float64 // length nfft, win padded and centered if shorter
	fft    *fourier.FFT

	frame []float64 // scratch frame buffer
}

// New creates a Transform for the given FFT size, hop length and window.
//
// The window may be shorter than nfft, in which case it is zero-padded
// equally on both sides. nfft and hop must be positive.
func New(nfft, hop int, win []float64) (*Transform, error) {
	if nfft <= 0 {
		return nil, fmt.Errorf("%w: fft size %d must be positive", ErrInvalidParams, nfft)
	}
	if hop <= 0 {
		return nil, fmt.Errorf("%w: hop length %d must be positive", ErrInvalidParams, hop)
	}
	if len(win) > nfft {
		return nil, fmt.Errorf("%w: window length %d exceeds fft size %d", ErrInvalidParams, len(win), nfft)
	}
	if len(win) == 0 {
		return nil, fmt.Errorf("%w: empty window", ErrInvalidParams)
	}

	// Center a short window inside the FFT frame, as torch-style
	// transforms do for win_length < n_fft.
	padded := make([]float64, nfft)
	offset := (nfft - len(win)) / 2
	copy(padded[offset:], win)

	return &Transform{
		nfft:   nfft,
		hop:    hop,
		window: padded,
		fft:    fourier.NewFFT(nfft),
		frame:  make([]float64, nfft),
	}, nil
}

// NFFT returns the FFT size.
func (t *Transform) NFFT() int { return t.nfft }

// HopLength returns the hop length between frames.
func (t *Transform) HopLength() int { return t.hop }

// Bins returns the number of one-sided frequency bins (nfft/2 + 1).
func (t *Transform) Bins() int { return t.nfft/2 + 1 }

// NumFrames returns the number of frames produced for a signal of length n
// after center padding.
func (t *Transform) NumFrames(n int) int {
	padded := n + 2*(t.nfft/2) // nfft/2 of reflect padding on each side
	if padded < t.nfft {
		return 0
	}
	return 1 + (padded-t.nfft)/t.hop
}

// Compute returns the complex one-sided STFT of x as a frames × bins matrix.
//
// The signal is reflect-padded by nfft/2 on each side so frame i is centered
// on sample i*hop. Reflect padding requires len(x) > nfft/2.
func (t *Transform) Compute(x []float64) ([][]complex128, error) {
	padded, err := ReflectPad(x, t.nfft/2)
	if err != nil {
		return nil, err
	}

	numFrames := t.NumFrames(len(x))
	bins := t.Bins()

	out := make([][]complex128, numFrames)
	for i := range numFrames {
		start := i * t.hop
		for j := range t.nfft {
			t.frame[j] = padded[start+j] * t.window[j]
		}

		row := make([]complex128, bins)
		t.fft.Coefficients(row, t.frame)
		out[i] = row
	}

	return out, nil
}

// ReflectPad pads x with pad mirrored samples on each side, excluding the
// edge sample itself: [x2 x1 | x0 x1 x2 ... xn-1 | xn-2 xn-3].
// Requires pad < len(x).
func ReflectPad(x []float64, pad int) ([]float64, error) {
	n := len(x)
	if pad >= n {
		return nil, fmt.Errorf("%w: need more than %d samples, have %d", ErrSignalTooShort, pad, n)
	}
	if pad <= 0 {
		out := make([]float64, n)
		copy(out, x)
		return out, nil
	}

	out := make([]float64, n+2*pad)
	copy(out[pad:], x)
	for i := 1; i <= pad; i++ {
		out[pad-i] = x[i]
		out[pad+n-1+i] = x[n-1-i]
	}
	return out, nil
}
