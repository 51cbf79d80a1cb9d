package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// AmplitudeToDBConfig holds decibel conversion parameters.
type AmplitudeToDBConfig struct {
	// Scale selects the input domain: DBPower (10·log10) or DBMagnitude
	// (20·log10).
	Scale DBScale

	// TopDB clamps the output dynamic range: values more than TopDB below
	// the global maximum are raised to max - TopDB. Zero disables clamping;
	// use DefaultTopDB for the conventional 80 dB range.
	TopDB float64

	// RefValue is the 0 dB reference. Defaults to 1.
	RefValue float64

	// AMin floors inputs before the logarithm. Defaults to 1e-10.
	AMin float64
}

// AmplitudeToDB converts power or magnitude spectra to a logarithmic
// decibel scale.
type AmplitudeToDB struct {
	multiplier float64
	topDB      float64
	refValue   float64
	aMin       float64
}

// NewAmplitudeToDB builds an AmplitudeToDB from cfg.
func NewAmplitudeToDB(cfg *AmplitudeToDBConfig) (*AmplitudeToDB, error) {
	if cfg == nil {
		cfg = &AmplitudeToDBConfig{}
	}

	var multiplier float64
	switch cfg.Scale {
	case DBPower:
		multiplier = dbPowerMultiplier
	case DBMagnitude:
		multiplier = dbMagnitudeMultiplier
	default:
		return nil, fmt.Errorf("%w: unknown dB scale %d", ErrInvalidConfig, cfg.Scale)
	}

	if cfg.TopDB < 0 {
		return nil, fmt.Errorf("%w: top dB %g must not be negative", ErrInvalidConfig, cfg.TopDB)
	}

	refValue := cfg.RefValue
	if refValue == 0 {
		refValue = defaultRefValue
	}
	if refValue < 0 {
		return nil, fmt.Errorf("%w: reference value %g must be positive", ErrInvalidConfig, refValue)
	}

	aMin := cfg.AMin
	if aMin == 0 {
		aMin = defaultAMin
	}
	if aMin <= 0 {
		return nil, fmt.Errorf("%w: amin %g must be positive", ErrInvalidConfig, aMin)
	}

	return &AmplitudeToDB{
		multiplier: multiplier,
		topDB:      cfg.TopDB,
		refValue:   refValue,
		aMin:       aMin,
	}, nil
}

// Apply converts a frames × bins spectrogram to decibels. The TopDB clamp,
// when enabled, is relative to the global maximum over all frames.
func (a *AmplitudeToDB) Apply(spec [][]float64) [][]float64 {
	out := make([][]float64, len(spec))
	for i, frame := range spec {
		row := make([]float64, len(frame))
		for k, v := range frame {
			row[k] = a.toDB(v)
		}
		out[i] = row
	}

	if a.topDB > 0 && len(out) > 0 {
		maxDB := math.Inf(-1)
		for _, row := range out {
			if len(row) == 0 {
				continue
			}
			if m := floats.Max(row); m > maxDB {
				maxDB = m
			}
		}
		floor := maxDB - a.topDB
		for _, row := range out {
			for k, v := range row {
				if v < floor {
					row[k] = floor
				}
			}
		}
	}

	return out
}

// ApplyVector converts a single vector to decibels, clamping relative to its
// own maximum when TopDB is enabled.
func (a *AmplitudeToDB) ApplyVector(v []float64) []float64 {
	out := a.Apply([][]float64{v})
	return out[0]
}

func (a *AmplitudeToDB) toDB(v float64) float64 {
	db := a.multiplier * math.Log10(math.Max(v, a.aMin))
	db -= a.multiplier * math.Log10(math.Max(a.aMin, a.refValue))
	return db
}
