package testutil

import (
	"math"
	"math/rand"
)

// Signal synthesis defaults.
const (
	// DefaultToneFreq is the sinusoid frequency used by transform tests, in Hz.
	DefaultToneFreq = 440.0

	// DefaultToneAmplitude keeps synthesized tones clear of full scale.
	DefaultToneAmplitude = 0.5

	// DefaultNoiseAmplitude scales white noise to a typical program level.
	DefaultNoiseAmplitude = 0.1

	// DefaultNoiseSeed makes noise generation reproducible across runs.
	DefaultNoiseSeed = 2187
)

// Sinusoid generates duration seconds of a pure tone at the given frequency
// and sample rate. The output is deterministic: same parameters, same signal.
func Sinusoid(freq float64, sampleRate int, duration float64) []float64 {
	n := int(duration * float64(sampleRate))
	out := make([]float64, n)
	omega := 2.0 * math.Pi * freq / float64(sampleRate)
	for i := range out {
		out[i] = DefaultToneAmplitude * math.Sin(omega*float64(i))
	}
	return out
}

// WhiteNoise generates n samples of uniform white noise from a fixed-seed
// generator, so every call with the same arguments yields the same signal.
func WhiteNoise(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = DefaultNoiseAmplitude * (2.0*rng.Float64() - 1.0)
	}
	return out
}
