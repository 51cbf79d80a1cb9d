package spectral

import (
	"fmt"

	"github.com/tphakala/go-audio-spectral/internal/mathutil"
	"github.com/tphakala/simd/f64"
)

// MFCCConfig holds mel-frequency cepstral coefficient parameters.
type MFCCConfig struct {
	// SampleRate of the input audio in Hz.
	SampleRate int

	// NMFCC is the number of cepstral coefficients. Defaults to 40.
	NMFCC int

	// Mel configures the underlying mel spectrogram. When nil, defaults are
	// used with SampleRate filled in.
	Mel *MelSpectrogramConfig
}

// MFCC computes mel-frequency cepstral coefficients: the orthonormal DCT-II
// of the power-dB mel spectrogram.
type MFCC struct {
	mel   *MelSpectrogram
	db    *AmplitudeToDB
	dct   [][]float64 // nMFCC × nMels
	nMFCC int
}

// NewMFCC builds an MFCC transform from cfg.
func NewMFCC(cfg *MFCCConfig) (*MFCC, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil mfcc config", ErrInvalidConfig)
	}

	nMFCC := cfg.NMFCC
	if nMFCC == 0 {
		nMFCC = defaultNMFCC
	}
	if nMFCC < 0 {
		return nil, fmt.Errorf("%w: coefficient count %d must be positive", ErrInvalidConfig, nMFCC)
	}

	melCfg := cfg.Mel
	if melCfg == nil {
		melCfg = &MelSpectrogramConfig{}
	}
	if melCfg.SampleRate == 0 {
		melCfg.SampleRate = cfg.SampleRate
	}

	mel, err := NewMelSpectrogram(melCfg)
	if err != nil {
		return nil, err
	}

	if nMFCC > mel.NMels() {
		return nil, fmt.Errorf("%w: coefficient count %d exceeds mel band count %d",
			ErrInvalidConfig, nMFCC, mel.NMels())
	}

	// MFCC uses the full dB range of the mel energies; clamping would break
	// the cepstral interpretation of the low-order coefficients.
	db, err := NewAmplitudeToDB(&AmplitudeToDBConfig{Scale: DBPower})
	if err != nil {
		return nil, err
	}

	return &MFCC{
		mel:   mel,
		db:    db,
		dct:   mathutil.DCT2Matrix(mel.NMels(), nMFCC),
		nMFCC: nMFCC,
	}, nil
}

// NMFCC returns the number of cepstral coefficients.
func (m *MFCC) NMFCC() int { return m.nMFCC }

// Compute returns the frames × NMFCC cepstral coefficient matrix of x.
func (m *MFCC) Compute(x []float64) ([][]float64, error) {
	melSpec, err := m.mel.Compute(x)
	if err != nil {
		return nil, err
	}

	logMel := m.db.Apply(melSpec)

	out := make([][]float64, len(logMel))
	for i, frame := range logMel {
		row := make([]float64, m.nMFCC)
		for k, basis := range m.dct {
			row[k] = f64.DotProductUnsafe(basis, frame)
		}
		out[i] = row
	}
	return out, nil
}
