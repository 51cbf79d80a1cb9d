package spectral

import "fmt"

// SpectralCentroidConfig holds spectral centroid parameters.
type SpectralCentroidConfig struct {
	// SampleRate of the input audio in Hz.
	SampleRate int

	// Spectrogram parameters; zero values take the Spectrogram defaults.
	NFFT      int
	HopLength int
	WinLength int
	Window    []float64
}

// SpectralCentroid computes the per-frame spectral center of mass: the
// magnitude-weighted mean frequency, in Hz.
type SpectralCentroid struct {
	spec  *Spectrogram
	freqs []float64 // bin center frequencies, linspace(0, sr/2, bins)
}

const centroidPower = 1.0 // centroid weights bins by magnitude, not power

// NewSpectralCentroid builds a SpectralCentroid from cfg.
func NewSpectralCentroid(cfg *SpectralCentroidConfig) (*SpectralCentroid, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil spectral centroid config", ErrInvalidConfig)
	}
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidConfig, cfg.SampleRate)
	}

	spec, err := NewSpectrogram(&SpectrogramConfig{
		NFFT:      cfg.NFFT,
		HopLength: cfg.HopLength,
		WinLength: cfg.WinLength,
		Window:    cfg.Window,
		Power:     centroidPower,
	})
	if err != nil {
		return nil, err
	}

	// The bin frequency grid spans linspace(0, nyquist, bins); a single bin
	// leaves no grid to weight.
	bins := spec.Bins()
	if bins < 2 {
		return nil, fmt.Errorf("%w: fft size %d yields a single frequency bin", ErrInvalidConfig, spec.NFFT())
	}
	nyquist := float64(cfg.SampleRate) / 2.0
	freqs := make([]float64, bins)
	for k := range freqs {
		freqs[k] = nyquist * float64(k) / float64(bins-1)
	}

	return &SpectralCentroid{spec: spec, freqs: freqs}, nil
}

// Compute returns the per-frame spectral centroid of x in Hz. Frames with no
// spectral energy yield 0.
func (c *SpectralCentroid) Compute(x []float64) ([]float64, error) {
	mag, err := c.spec.Compute(x)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(mag))
	for i, frame := range mag {
		var num, den float64
		for k, v := range frame {
			num += c.freqs[k] * v
			den += v
		}
		if den > 0 {
			out[i] = num / den
		}
	}
	return out, nil
}
