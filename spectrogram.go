package spectral

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-audio-spectral/internal/stft"
	"github.com/tphakala/go-audio-spectral/internal/window"
)

// SpectrogramConfig holds spectrogram parameters.
//
// Zero values select the conventional defaults: NFFT 400, HopLength NFFT/4,
// WinLength NFFT, a periodic Hann window and power 2 output.
type SpectrogramConfig struct {
	// NFFT is the FFT size. The output has NFFT/2 + 1 frequency bins.
	NFFT int

	// HopLength is the stride between consecutive frames in samples.
	// Defaults to NFFT/4.
	HopLength int

	// WinLength is the analysis window length. Defaults to NFFT; shorter
	// windows are zero-padded and centered inside the FFT frame.
	WinLength int

	// Window overrides the analysis window. When nil a periodic Hann window
	// of WinLength samples is used. Must have length WinLength when set.
	Window []float64

	// Power is the exponent applied to the spectrogram magnitude: 1 for
	// magnitude, 2 for power. Zero selects power 2. Use NewComplexSpectrogram
	// for complex output.
	Power float64
}

// Spectrogram computes magnitude, power or complex short-time Fourier
// spectrograms with centered frames and reflect padding.
//
// Output matrices are frame-major: out[i][k] is bin k of the frame centered
// on sample i*HopLength.
type Spectrogram struct {
	transform *stft.Transform
	power     float64
	isComplex bool
}

const complexPower = 0.0 // internal sentinel for complex output

// NewSpectrogram creates a Spectrogram from cfg, applying defaults for
// zero-valued fields.
func NewSpectrogram(cfg *SpectrogramConfig) (*Spectrogram, error) {
	return newSpectrogram(cfg, false)
}

// NewComplexSpectrogram creates a Spectrogram whose ComputeComplex returns
// raw complex STFT coefficients. Power in cfg is ignored.
func NewComplexSpectrogram(cfg *SpectrogramConfig) (*Spectrogram, error) {
	return newSpectrogram(cfg, true)
}

func newSpectrogram(cfg *SpectrogramConfig, isComplex bool) (*Spectrogram, error) {
	if cfg == nil {
		cfg = &SpectrogramConfig{}
	}

	nfft := cfg.NFFT
	if nfft == 0 {
		nfft = defaultNFFT
	}
	if nfft <= 0 {
		return nil, fmt.Errorf("%w: fft size %d must be positive", ErrInvalidConfig, nfft)
	}

	hop := cfg.HopLength
	if hop == 0 {
		hop = nfft / hopDivisor
	}
	if hop <= 0 {
		return nil, fmt.Errorf("%w: hop length %d must be positive", ErrInvalidConfig, hop)
	}

	winLength := cfg.WinLength
	if winLength == 0 {
		winLength = nfft
	}
	if winLength <= 0 || winLength > nfft {
		return nil, fmt.Errorf("%w: window length %d outside (0, %d]", ErrInvalidConfig, winLength, nfft)
	}

	win := cfg.Window
	if win == nil {
		win = window.Hann(winLength, true)
	} else if len(win) != winLength {
		return nil, fmt.Errorf("%w: window has %d samples, expected %d", ErrInvalidConfig, len(win), winLength)
	}

	power := cfg.Power
	if power == 0 {
		power = defaultPower
	}
	if !isComplex && power < 0 {
		return nil, fmt.Errorf("%w: power %g must be positive", ErrInvalidConfig, power)
	}

	transform, err := stft.New(nfft, hop, win)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Spectrogram{
		transform: transform,
		power:     power,
		isComplex: isComplex,
	}, nil
}

// NFFT returns the FFT size.
func (s *Spectrogram) NFFT() int { return s.transform.NFFT() }

// HopLength returns the frame stride in samples.
func (s *Spectrogram) HopLength() int { return s.transform.HopLength() }

// Bins returns the number of one-sided frequency bins (NFFT/2 + 1).
func (s *Spectrogram) Bins() int { return s.transform.Bins() }

// NumFrames returns the number of frames produced for a signal of n samples.
func (s *Spectrogram) NumFrames(n int) int { return s.transform.NumFrames(n) }

// Power returns the magnitude exponent, or 0 for complex output.
func (s *Spectrogram) Power() float64 {
	if s.isComplex {
		return complexPower
	}
	return s.power
}

// Compute returns the |STFT|^power spectrogram of x as a frames × bins
// matrix. Returns ErrComplexOutput when the transform was built with
// NewComplexSpectrogram.
func (s *Spectrogram) Compute(x []float64) ([][]float64, error) {
	if s.isComplex {
		return nil, ErrComplexOutput
	}

	coeffs, err := s.transform.Compute(x)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(coeffs))
	for i, frame := range coeffs {
		row := make([]float64, len(frame))
		for k, c := range frame {
			mag := cmplx.Abs(c)
			switch s.power {
			case 1.0:
				row[k] = mag
			case 2.0:
				row[k] = mag * mag
			default:
				row[k] = math.Pow(mag, s.power)
			}
		}
		out[i] = row
	}
	return out, nil
}

// ComputeComplex returns the raw complex STFT coefficients of x as a
// frames × bins matrix.
func (s *Spectrogram) ComputeComplex(x []float64) ([][]complex128, error) {
	return s.transform.Compute(x)
}
