package spectral

// Transform parameter defaults
const (
	// defaultNFFT is the default FFT size (25 ms at 16 kHz).
	defaultNFFT = 400

	// defaultPower selects power spectra (|X|²) when no power is given.
	defaultPower = 2.0

	// hopDivisor derives the default hop length as NFFT/4 (75% overlap).
	hopDivisor = 4

	// defaultNMels is the default mel filterbank size.
	defaultNMels = 128

	// defaultNMFCC is the default number of cepstral coefficients.
	defaultNMFCC = 40
)

// Decibel conversion constants
const (
	// dbPowerMultiplier converts power ratios: dB = 10·log10(x).
	dbPowerMultiplier = 10.0

	// dbMagnitudeMultiplier converts amplitude ratios: dB = 20·log10(x).
	dbMagnitudeMultiplier = 20.0

	// defaultAMin floors inputs before the logarithm to avoid log(0).
	defaultAMin = 1e-10

	// defaultRefValue is the 0 dB reference.
	defaultRefValue = 1.0

	// DefaultTopDB is the conventional dynamic range clamp for spectrogram
	// visualization and feature extraction (librosa's power_to_db default).
	DefaultTopDB = 80.0
)
