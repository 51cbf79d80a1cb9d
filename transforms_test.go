package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-spectral/internal/testutil"
)

func TestMelScaleValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  MelScaleConfig
	}{
		{name: "zero sample rate", cfg: MelScaleConfig{NMels: 40, NSTFT: 201}},
		{name: "zero bins", cfg: MelScaleConfig{NMels: 40, SampleRate: 16000}},
		{name: "negative mels", cfg: MelScaleConfig{NMels: -1, SampleRate: 16000, NSTFT: 201}},
		{name: "bad scale", cfg: MelScaleConfig{NMels: 40, SampleRate: 16000, NSTFT: 201, Scale: "bark"}},
		{name: "bad norm", cfg: MelScaleConfig{NMels: 40, SampleRate: 16000, NSTFT: 201, Norm: "area"}},
		{name: "fmax above nyquist", cfg: MelScaleConfig{NMels: 40, SampleRate: 16000, NSTFT: 201, FMax: 9000}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMelScale(&tc.cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestMelScaleFilterbankShape(t *testing.T) {
	m, err := NewMelScale(&MelScaleConfig{
		NMels:      64,
		SampleRate: 16000,
		NSTFT:      201,
	})
	require.NoError(t, err)

	fb := m.Filterbank()
	require.Len(t, fb, 64)
	for _, row := range fb {
		assert.Len(t, row, 201)
	}
	assert.Equal(t, 64, m.NMels())
}

func TestMelSpectrogramShape(t *testing.T) {
	x := testutil.Sinusoid(testutil.DefaultToneFreq, 16000, 0.5)

	m, err := NewMelSpectrogram(&MelSpectrogramConfig{
		SampleRate: 16000,
		NFFT:       400,
		HopLength:  200,
		NMels:      64,
	})
	require.NoError(t, err)

	mel, err := m.Compute(x)
	require.NoError(t, err)

	assert.Len(t, mel, m.NumFrames(len(x)))
	for _, frame := range mel {
		assert.Len(t, frame, 64)
		for _, v := range frame {
			assert.GreaterOrEqual(t, v, 0.0, "mel power energies are non-negative")
		}
	}
}

func TestAmplitudeToDBRoundTrip(t *testing.T) {
	db, err := NewAmplitudeToDB(&AmplitudeToDBConfig{Scale: DBPower})
	require.NoError(t, err)

	// 10^k power ratios map to 10k dB exactly.
	in := []float64{1.0, 10.0, 100.0, 0.1}
	out := db.ApplyVector(in)
	want := []float64{0.0, 10.0, 20.0, -10.0}
	for i := range want {
		assert.InDelta(t, want[i], out[i], 1e-12)
	}
}

func TestAmplitudeToDBMagnitudeScale(t *testing.T) {
	db, err := NewAmplitudeToDB(&AmplitudeToDBConfig{Scale: DBMagnitude})
	require.NoError(t, err)

	out := db.ApplyVector([]float64{10.0})
	assert.InDelta(t, 20.0, out[0], 1e-12)
}

func TestAmplitudeToDBTopDBClamp(t *testing.T) {
	db, err := NewAmplitudeToDB(&AmplitudeToDBConfig{Scale: DBPower, TopDB: DefaultTopDB})
	require.NoError(t, err)

	// Clamp is relative to the global maximum across frames.
	spec := [][]float64{
		{1.0, 1e-20},
		{1e-3, 1e-12},
	}
	out := db.Apply(spec)

	assert.InDelta(t, 0.0, out[0][0], 1e-12)
	assert.InDelta(t, -DefaultTopDB, out[0][1], 1e-12)
	assert.InDelta(t, -30.0, out[1][0], 1e-12)
	assert.InDelta(t, -DefaultTopDB, out[1][1], 1e-12)
}

func TestAmplitudeToDBReference(t *testing.T) {
	db, err := NewAmplitudeToDB(&AmplitudeToDBConfig{Scale: DBPower, RefValue: 100.0})
	require.NoError(t, err)

	out := db.ApplyVector([]float64{100.0, 1.0})
	assert.InDelta(t, 0.0, out[0], 1e-12)
	assert.InDelta(t, -20.0, out[1], 1e-12)
}

func TestAmplitudeToDBValidation(t *testing.T) {
	_, err := NewAmplitudeToDB(&AmplitudeToDBConfig{Scale: DBScale(7)})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewAmplitudeToDB(&AmplitudeToDBConfig{TopDB: -1})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewAmplitudeToDB(&AmplitudeToDBConfig{AMin: -1})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestMFCCShape(t *testing.T) {
	x := testutil.Sinusoid(testutil.DefaultToneFreq, 16000, 0.5)

	m, err := NewMFCC(&MFCCConfig{SampleRate: 16000, NMFCC: 13})
	require.NoError(t, err)
	assert.Equal(t, 13, m.NMFCC())

	coeffs, err := m.Compute(x)
	require.NoError(t, err)

	for _, frame := range coeffs {
		assert.Len(t, frame, 13)
	}
	testutil.AssertMatrixNoNaNOrInf(t, coeffs)
}

func TestMFCCValidation(t *testing.T) {
	_, err := NewMFCC(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewMFCC(&MFCCConfig{
		SampleRate: 16000,
		NMFCC:      80,
		Mel:        &MelSpectrogramConfig{SampleRate: 16000, NMels: 40},
	})
	assert.ErrorIs(t, err, ErrInvalidConfig, "more coefficients than mel bands")
}

func TestSpectralCentroidOfTone(t *testing.T) {
	const freq = 2000.0
	x := testutil.Sinusoid(freq, 16000, 0.5)

	c, err := NewSpectralCentroid(&SpectralCentroidConfig{
		SampleRate: 16000,
		NFFT:       400,
		HopLength:  200,
	})
	require.NoError(t, err)

	centroid, err := c.Compute(x)
	require.NoError(t, err)

	// Edge frames see padding; check the steady-state middle.
	mid := centroid[len(centroid)/2]
	assert.InDelta(t, freq, mid, 50.0)
}

func TestSpectralCentroidSilence(t *testing.T) {
	c, err := NewSpectralCentroid(&SpectralCentroidConfig{
		SampleRate: 16000,
		NFFT:       400,
		HopLength:  200,
	})
	require.NoError(t, err)

	centroid, err := c.Compute(make([]float64, 1600))
	require.NoError(t, err)

	for i, v := range centroid {
		assert.Zero(t, v, "silent frame %d should have centroid 0", i)
	}
}

func TestSpectralCentroidValidation(t *testing.T) {
	_, err := NewSpectralCentroid(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewSpectralCentroid(&SpectralCentroidConfig{})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	// A one-point FFT has a single one-sided bin, leaving no frequency grid
	// to weight.
	_, err = NewSpectralCentroid(&SpectralCentroidConfig{SampleRate: 16000, NFFT: 1})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConvenienceHelpers(t *testing.T) {
	x := testutil.Sinusoid(testutil.DefaultToneFreq, RateVoIP, 0.5)

	spec, err := ComputeSpectrogram(x)
	require.NoError(t, err)
	assert.NotEmpty(t, spec)

	mel, err := ComputeMelSpectrogram(x, RateVoIP)
	require.NoError(t, err)
	assert.Len(t, mel[0], defaultNMels)

	mfcc, err := ComputeMFCC(x, RateVoIP)
	require.NoError(t, err)
	assert.Len(t, mfcc[0], defaultNMFCC)

	centroid, err := ComputeSpectralCentroid(x, RateVoIP)
	require.NoError(t, err)
	assert.Len(t, centroid, len(spec))
}

func TestSpeechMFCCPreset(t *testing.T) {
	m, err := NewSpeechMFCC()
	require.NoError(t, err)
	assert.Equal(t, 13, m.NMFCC())

	x := testutil.Sinusoid(testutil.DefaultToneFreq, RateVoIP, 0.25)
	coeffs, err := m.Compute(x)
	require.NoError(t, err)
	assert.Len(t, coeffs[0], 13)
}

func TestMusicMelSpectrogramPreset(t *testing.T) {
	m, err := NewMusicMelSpectrogram()
	require.NoError(t, err)
	assert.Equal(t, 128, m.NMels())

	x := testutil.WhiteNoise(RateCD/4, testutil.DefaultNoiseSeed)
	mel, err := m.Compute(x)
	require.NoError(t, err)
	testutil.AssertMatrixNoNaNOrInf(t, mel)
}

// Parseval-style sanity check: scaling the input by a scales power spectra
// by a².
func TestSpectrogramScaling(t *testing.T) {
	x := testutil.Sinusoid(testutil.DefaultToneFreq, 16000, 0.2)
	scaled := make([]float64, len(x))
	for i, v := range x {
		scaled[i] = 2.0 * v
	}

	s, err := NewSpectrogram(&SpectrogramConfig{NFFT: 400, HopLength: 200})
	require.NoError(t, err)

	base, err := s.Compute(x)
	require.NoError(t, err)
	quad, err := s.Compute(scaled)
	require.NoError(t, err)

	for i := range base {
		for k := range base[i] {
			assert.InDelta(t, 4.0*base[i][k], quad[i][k], 1e-9+1e-9*math.Abs(base[i][k]))
		}
	}
}
