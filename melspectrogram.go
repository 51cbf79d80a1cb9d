package spectral

// MelSpectrogramConfig holds the combined spectrogram and mel filterbank
// parameters.
type MelSpectrogramConfig struct {
	// SampleRate of the input audio in Hz.
	SampleRate int

	// Spectrogram parameters; zero values take the Spectrogram defaults.
	NFFT      int
	HopLength int
	WinLength int
	Window    []float64
	Power     float64

	// Mel filterbank parameters; zero values take the MelScale defaults.
	NMels int
	FMin  float64
	FMax  float64
	Scale MelScaleType
	Norm  MelNorm
}

// MelSpectrogram composes Spectrogram and MelScale into a single transform.
type MelSpectrogram struct {
	spec *Spectrogram
	mel  *MelScale
}

// NewMelSpectrogram builds a MelSpectrogram from cfg.
func NewMelSpectrogram(cfg *MelSpectrogramConfig) (*MelSpectrogram, error) {
	if cfg == nil {
		cfg = &MelSpectrogramConfig{}
	}

	spec, err := NewSpectrogram(&SpectrogramConfig{
		NFFT:      cfg.NFFT,
		HopLength: cfg.HopLength,
		WinLength: cfg.WinLength,
		Window:    cfg.Window,
		Power:     cfg.Power,
	})
	if err != nil {
		return nil, err
	}

	mel, err := NewMelScale(&MelScaleConfig{
		NMels:      cfg.NMels,
		SampleRate: cfg.SampleRate,
		NSTFT:      spec.Bins(),
		FMin:       cfg.FMin,
		FMax:       cfg.FMax,
		Scale:      cfg.Scale,
		Norm:       cfg.Norm,
	})
	if err != nil {
		return nil, err
	}

	return &MelSpectrogram{spec: spec, mel: mel}, nil
}

// NMels returns the number of mel bands.
func (m *MelSpectrogram) NMels() int { return m.mel.NMels() }

// NumFrames returns the number of frames produced for a signal of n samples.
func (m *MelSpectrogram) NumFrames(n int) int { return m.spec.NumFrames(n) }

// Compute returns the frames × NMels mel spectrogram of x.
func (m *MelSpectrogram) Compute(x []float64) ([][]float64, error) {
	spec, err := m.spec.Compute(x)
	if err != nil {
		return nil, err
	}
	return m.mel.Apply(spec)
}
