// Package melbank constructs triangular mel filterbanks and projects
// spectrograms onto them.
package melbank

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
)

// Scale selects the mel-scale formula used for filter placement.
type Scale int

const (
	// ScaleHTK is the HTK formula: mel = 2595 * log10(1 + f/700).
	ScaleHTK Scale = iota

	// ScaleSlaney is the Auditory Toolbox formula: linear below 1 kHz,
	// logarithmic above.
	ScaleSlaney
)

// Slaney mel-scale constants (Malcolm Slaney's Auditory Toolbox).
const (
	slaneyFSp       = 200.0 / 3.0 // Hz per mel in the linear region
	slaneyMinLogHz  = 1000.0      // Start of the logarithmic region
	slaneyMinLogMel = slaneyMinLogHz / slaneyFSp
	slaneyLogBase   = 6.4  // Frequency growth over the log region
	slaneyLogSteps  = 27.0 // Mel steps spanning one log-base interval
)

// HTK mel-scale constants.
const (
	htkMelScale = 2595.0
	htkBreakHz  = 700.0
)

// slaneyNormScale is the numerator of the area normalization term 2/(f_hi - f_lo).
const slaneyNormScale = 2.0

// ErrInvalidBank indicates invalid filterbank parameters.
var ErrInvalidBank = errors.New("invalid mel filterbank parameters")

// HzToMel converts a frequency in Hz to mels using the given scale.
func HzToMel(freq float64, scale Scale) float64 {
	if scale == ScaleHTK {
		return htkMelScale * math.Log10(1.0+freq/htkBreakHz)
	}

	if freq >= slaneyMinLogHz {
		logStep := math.Log(slaneyLogBase) / slaneyLogSteps
		return slaneyMinLogMel + math.Log(freq/slaneyMinLogHz)/logStep
	}
	return freq / slaneyFSp
}

// MelToHz converts mels back to Hz using the given scale.
func MelToHz(mel float64, scale Scale) float64 {
	if scale == ScaleHTK {
		return htkBreakHz * (math.Pow(10.0, mel/htkMelScale) - 1.0)
	}

	if mel >= slaneyMinLogMel {
		logStep := math.Log(slaneyLogBase) / slaneyLogSteps
		return slaneyMinLogHz * math.Exp(logStep*(mel-slaneyMinLogMel))
	}
	return slaneyFSp * mel
}

// Config holds filterbank construction parameters.
type Config struct {
	// NMels is the number of triangular filters.
	NMels int

	// NFreqs is the number of one-sided spectrogram bins (n_fft/2 + 1).
	NFreqs int

	// SampleRate of the audio the spectrogram was computed from, in Hz.
	SampleRate int

	// FMin and FMax bound the filterbank frequency range in Hz.
	// FMax defaults to SampleRate/2 when zero.
	FMin float64
	FMax float64

	// Scale selects the mel formula for filter placement.
	Scale Scale

	// SlaneyNorm enables area normalization: each filter is scaled by
	// 2/(f_hi - f_lo) so it integrates to roughly constant energy.
	SlaneyNorm bool
}

// Bank is a precomputed mel filterbank.
type Bank struct {
	weights [][]float64 // nMels × nFreqs
	nMels   int
	nFreqs  int
}

// New builds a triangular mel filterbank.
//
// Filter centers are equally spaced on the mel scale between FMin and FMax.
// Each filter rises linearly (in Hz) from its lower neighbor's center to its
// own and falls to its upper neighbor's center.
func New(cfg Config) (*Bank, error) {
	if cfg.NMels <= 0 {
		return nil, fmt.Errorf("%w: mel count %d must be positive", ErrInvalidBank, cfg.NMels)
	}
	if cfg.NFreqs < 2 {
		return nil, fmt.Errorf("%w: frequency bin count %d must be at least 2", ErrInvalidBank, cfg.NFreqs)
	}
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidBank, cfg.SampleRate)
	}

	fMax := cfg.FMax
	nyquist := float64(cfg.SampleRate) / 2.0
	if fMax == 0 {
		fMax = nyquist
	}
	if cfg.FMin < 0 || fMax <= cfg.FMin || fMax > nyquist {
		return nil, fmt.Errorf("%w: frequency range [%g, %g] outside (0, %g]",
			ErrInvalidBank, cfg.FMin, fMax, nyquist)
	}

	// One-sided FFT bin frequencies: linspace(0, nyquist, nFreqs).
	freqs := make([]float64, cfg.NFreqs)
	for k := range freqs {
		freqs[k] = nyquist * float64(k) / float64(cfg.NFreqs-1)
	}

	// Filter edge frequencies, equally spaced in mel.
	melMin := HzToMel(cfg.FMin, cfg.Scale)
	melMax := HzToMel(fMax, cfg.Scale)
	fPts := make([]float64, cfg.NMels+2)
	for i := range fPts {
		mel := melMin + (melMax-melMin)*float64(i)/float64(cfg.NMels+1)
		fPts[i] = MelToHz(mel, cfg.Scale)
	}

	weights := make([][]float64, cfg.NMels)
	for m := range cfg.NMels {
		lo, center, hi := fPts[m], fPts[m+1], fPts[m+2]
		row := make([]float64, cfg.NFreqs)
		for k, f := range freqs {
			up := (f - lo) / (center - lo)
			down := (hi - f) / (hi - center)
			w := math.Min(up, down)
			if w > 0 {
				row[k] = w
			}
		}
		if cfg.SlaneyNorm {
			enorm := slaneyNormScale / (hi - lo)
			f64.Scale(row, row, enorm)
		}
		weights[m] = row
	}

	return &Bank{weights: weights, nMels: cfg.NMels, nFreqs: cfg.NFreqs}, nil
}

// NMels returns the number of filters.
func (b *Bank) NMels() int { return b.nMels }

// Weights returns the nMels × nFreqs filter matrix. The returned slices are
// the bank's own storage; callers must not modify them.
func (b *Bank) Weights() [][]float64 { return b.weights }

// Apply projects a frames × nFreqs spectrogram onto the filterbank,
// returning a frames × nMels mel spectrogram.
func (b *Bank) Apply(spec [][]float64) ([][]float64, error) {
	out := make([][]float64, len(spec))
	for i, frame := range spec {
		if len(frame) != b.nFreqs {
			return nil, fmt.Errorf("%w: spectrogram has %d bins, filterbank expects %d",
				ErrInvalidBank, len(frame), b.nFreqs)
		}
		row := make([]float64, b.nMels)
		for m, filt := range b.weights {
			row[m] = f64.DotProductUnsafe(filt, frame)
		}
		out[i] = row
	}
	return out, nil
}
