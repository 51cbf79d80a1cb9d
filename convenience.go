package spectral

// Common audio sample rates (Hz).
const (
	// RateTelephony is the narrowband telephony rate.
	RateTelephony = 8000

	// RateVoIP is the wideband speech rate common in VoIP and ASR.
	RateVoIP = 16000

	// RateBroadcast is used in broadcast and some DAT recordings.
	RateBroadcast = 32000

	// RateCD is the Compact Disc rate.
	RateCD = 44100

	// RateDVD is the professional/DVD audio rate.
	RateDVD = 48000
)

// ComputeSpectrogram computes a power spectrogram of x with default
// parameters (NFFT 400, hop 100, periodic Hann window).
func ComputeSpectrogram(x []float64) ([][]float64, error) {
	s, err := NewSpectrogram(nil)
	if err != nil {
		return nil, err
	}
	return s.Compute(x)
}

// ComputeMelSpectrogram computes a 128-band mel power spectrogram of x with
// default parameters.
func ComputeMelSpectrogram(x []float64, sampleRate int) ([][]float64, error) {
	m, err := NewMelSpectrogram(&MelSpectrogramConfig{SampleRate: sampleRate})
	if err != nil {
		return nil, err
	}
	return m.Compute(x)
}

// ComputeMFCC computes 40 mel-frequency cepstral coefficients per frame with
// default parameters.
func ComputeMFCC(x []float64, sampleRate int) ([][]float64, error) {
	m, err := NewMFCC(&MFCCConfig{SampleRate: sampleRate})
	if err != nil {
		return nil, err
	}
	return m.Compute(x)
}

// ComputeSpectralCentroid computes the per-frame spectral centroid of x in Hz
// with default parameters.
func ComputeSpectralCentroid(x []float64, sampleRate int) ([]float64, error) {
	c, err := NewSpectralCentroid(&SpectralCentroidConfig{SampleRate: sampleRate})
	if err != nil {
		return nil, err
	}
	return c.Compute(x)
}

// NewSpeechMFCC creates an MFCC transform with parameters typical for speech
// feature extraction: 25 ms windows with 10 ms hop at 16 kHz, 40 mel bands
// and 13 coefficients.
func NewSpeechMFCC() (*MFCC, error) {
	return NewMFCC(&MFCCConfig{
		SampleRate: RateVoIP,
		NMFCC:      13,
		Mel: &MelSpectrogramConfig{
			SampleRate: RateVoIP,
			NFFT:       400,
			HopLength:  160,
			NMels:      40,
		},
	})
}

// NewMusicMelSpectrogram creates a MelSpectrogram with parameters typical
// for music analysis: 2048-point FFT with 512-sample hop at 44.1 kHz and
// 128 slaney-normalized mel bands.
func NewMusicMelSpectrogram() (*MelSpectrogram, error) {
	return NewMelSpectrogram(&MelSpectrogramConfig{
		SampleRate: RateCD,
		NFFT:       2048,
		HopLength:  512,
		NMels:      128,
		Scale:      MelSlaney,
		Norm:       MelNormSlaney,
	})
}
