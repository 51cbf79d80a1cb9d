package spectral

import (
	"errors"

	"github.com/tphakala/go-audio-spectral/internal/stft"
)

// MelScaleType selects the mel-scale formula for filterbank placement.
type MelScaleType string

const (
	// MelHTK is the HTK formula: mel = 2595·log10(1 + f/700).
	MelHTK MelScaleType = "htk"

	// MelSlaney is the Auditory Toolbox formula: linear below 1 kHz,
	// logarithmic above.
	MelSlaney MelScaleType = "slaney"
)

// MelNorm selects the mel filterbank normalization mode.
type MelNorm string

const (
	// MelNormNone leaves the triangular filters with unit peak.
	MelNormNone MelNorm = ""

	// MelNormSlaney divides each filter by half its bandwidth so filters
	// integrate to roughly constant energy.
	MelNormSlaney MelNorm = "slaney"
)

// DBScale selects the input domain of a decibel conversion.
type DBScale int

const (
	// DBPower treats the input as a power quantity: dB = 10·log10(x).
	DBPower DBScale = iota

	// DBMagnitude treats the input as an amplitude: dB = 20·log10(x).
	DBMagnitude
)

// Common errors returned by the transforms.
var (
	// ErrInvalidConfig indicates invalid transform configuration.
	ErrInvalidConfig = errors.New("invalid transform configuration")

	// ErrSignalTooShort indicates the input signal cannot fill a single
	// analysis frame after center padding.
	ErrSignalTooShort = stft.ErrSignalTooShort

	// ErrComplexOutput indicates Compute was called on a transform
	// configured for complex output; use ComputeComplex instead.
	ErrComplexOutput = errors.New("transform configured for complex output")
)
