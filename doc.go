// Package spectral provides audio feature transforms in pure Go.
//
// The package implements the spectral analysis pipeline common to speech and
// music processing: short-time Fourier spectrograms, mel-scaled spectrograms,
// decibel conversion, mel-frequency cepstral coefficients (MFCC) and spectral
// centroid. Conventions follow the torch/librosa lineage: centered frames
// with reflect padding, periodic Hann analysis windows, one-sided spectra,
// and mel filterbanks in both the HTK and Slaney variants.
//
// # Quick Start
//
// One-shot helpers cover the common cases:
//
//	mel, err := spectral.ComputeMelSpectrogram(samples, 16000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated processing, build a transform once and reuse it:
//
//	mfcc, err := spectral.NewMFCC(&spectral.MFCCConfig{
//	    SampleRate: 16000,
//	    NMFCC:      40,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	coeffs, err := mfcc.Compute(samples)
//
// # Transforms
//
//   - [Spectrogram]: magnitude, power, or complex STFT output
//   - [MelScale]: projection of a spectrogram onto a triangular mel filterbank
//   - [MelSpectrogram]: Spectrogram composed with MelScale
//   - [AmplitudeToDB]: logarithmic (decibel) scaling with optional dynamic
//     range clamping
//   - [MFCC]: DCT-II of log-mel energies
//   - [SpectralCentroid]: per-frame spectral center of mass
//
// All transforms operate on mono []float64 sample slices. Multi-channel audio
// should be downmixed first (see the loader package).
//
// # Numerical Compatibility
//
// Outputs are designed to match librosa's reference routines: the repository
// carries an independent reference implementation (package reference) built on
// a separate FFT library, and the test suite asserts elementwise agreement
// between the two pipelines across the supported parameter space.
//
// # Thread Safety
//
// Transform instances hold scratch buffers and are not safe for concurrent
// use. Create one instance per goroutine; construction is cheap relative to
// processing.
package spectral
