package spectral

import (
	"fmt"

	"github.com/tphakala/go-audio-spectral/internal/melbank"
)

// MelScaleConfig holds mel filterbank projection parameters.
type MelScaleConfig struct {
	// NMels is the number of mel bands. Defaults to 128.
	NMels int

	// SampleRate of the audio the spectrogram was computed from, in Hz.
	SampleRate int

	// NSTFT is the number of one-sided spectrogram bins (NFFT/2 + 1).
	NSTFT int

	// FMin and FMax bound the filterbank frequency range in Hz.
	// FMax defaults to SampleRate/2.
	FMin float64
	FMax float64

	// Scale selects the mel formula. Defaults to MelHTK.
	Scale MelScaleType

	// Norm selects filter normalization. Defaults to MelNormNone.
	Norm MelNorm
}

// MelScale projects spectrograms onto a triangular mel filterbank.
type MelScale struct {
	bank  *melbank.Bank
	nMels int
}

// NewMelScale builds a MelScale from cfg.
func NewMelScale(cfg *MelScaleConfig) (*MelScale, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil mel scale config", ErrInvalidConfig)
	}

	nMels := cfg.NMels
	if nMels == 0 {
		nMels = defaultNMels
	}

	scale, err := melScaleOf(cfg.Scale)
	if err != nil {
		return nil, err
	}
	slaneyNorm, err := melNormOf(cfg.Norm)
	if err != nil {
		return nil, err
	}

	bank, err := melbank.New(melbank.Config{
		NMels:      nMels,
		NFreqs:     cfg.NSTFT,
		SampleRate: cfg.SampleRate,
		FMin:       cfg.FMin,
		FMax:       cfg.FMax,
		Scale:      scale,
		SlaneyNorm: slaneyNorm,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &MelScale{bank: bank, nMels: nMels}, nil
}

// NMels returns the number of mel bands.
func (m *MelScale) NMels() int { return m.nMels }

// Filterbank returns the nMels × nSTFT filter weight matrix. The returned
// slices are the transform's own storage; callers must not modify them.
func (m *MelScale) Filterbank() [][]float64 { return m.bank.Weights() }

// Apply projects a frames × nSTFT spectrogram onto the filterbank, returning
// a frames × nMels mel spectrogram.
func (m *MelScale) Apply(spec [][]float64) ([][]float64, error) {
	out, err := m.bank.Apply(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return out, nil
}

func melScaleOf(s MelScaleType) (melbank.Scale, error) {
	switch s {
	case "", MelHTK:
		return melbank.ScaleHTK, nil
	case MelSlaney:
		return melbank.ScaleSlaney, nil
	default:
		return 0, fmt.Errorf("%w: unknown mel scale %q", ErrInvalidConfig, s)
	}
}

func melNormOf(n MelNorm) (bool, error) {
	switch n {
	case MelNormNone:
		return false, nil
	case MelNormSlaney:
		return true, nil
	default:
		return false, fmt.Errorf("%w: unknown mel norm %q", ErrInvalidConfig, n)
	}
}
