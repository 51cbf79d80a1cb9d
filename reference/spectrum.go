package reference

import (
	"fmt"
	"math"
)

// Decibel conversion floors, per librosa's power_to_db and amplitude_to_db.
const (
	powerAMin     = 1e-10
	amplitudeAMin = 1e-5

	// DefaultTopDB is librosa's default dynamic range clamp.
	DefaultTopDB = 80.0
)

// PowerToDB converts a power spectrogram to decibels:
// 10·log10(max(x, 1e-10)), clamped to topDB below the global maximum when
// topDB > 0.
func PowerToDB(spec [][]float64, topDB float64) [][]float64 {
	return toDB(spec, 10.0, powerAMin, topDB)
}

// AmplitudeToDB converts a magnitude spectrogram to decibels:
// 20·log10(max(x, 1e-5)), clamped to topDB below the global maximum when
// topDB > 0.
func AmplitudeToDB(spec [][]float64, topDB float64) [][]float64 {
	return toDB(spec, 20.0, amplitudeAMin, topDB)
}

func toDB(spec [][]float64, multiplier, aMin, topDB float64) [][]float64 {
	out := make([][]float64, len(spec))
	maxDB := math.Inf(-1)
	for i, frame := range spec {
		row := make([]float64, len(frame))
		for k, v := range frame {
			db := multiplier * math.Log10(math.Max(v, aMin))
			row[k] = db
			if db > maxDB {
				maxDB = db
			}
		}
		out[i] = row
	}

	if topDB > 0 {
		floor := maxDB - topDB
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

// MFCC computes frames × nMFCC cepstral coefficients: the orthonormal DCT-II
// of the unclamped power-dB mel spectrogram.
func MFCC(x []float64, sampleRate, nfft, hop, nMels, nMFCC int) ([][]float64, error) {
	mel, err := MelSpectrogram(x, sampleRate, nfft, hop, nMels, true, false)
	if err != nil {
		return nil, err
	}
	logMel := PowerToDB(mel, 0)

	out := make([][]float64, len(logMel))
	for i, frame := range logMel {
		row := make([]float64, nMFCC)
		for k := range nMFCC {
			var acc float64
			for n, v := range frame {
				acc += v * math.Cos(math.Pi*float64(k)*(float64(n)+0.5)/float64(nMels))
			}
			scale := math.Sqrt(2.0 / float64(nMels))
			if k == 0 {
				scale = math.Sqrt(1.0 / float64(nMels))
			}
			row[k] = scale * acc
		}
		out[i] = row
	}
	return out, nil
}

// SpectralCentroid computes the per-frame magnitude-weighted mean frequency
// of x, in Hz. Frames with no energy yield 0. nfft must span at least two
// one-sided bins.
func SpectralCentroid(x []float64, sampleRate, nfft, hop int) ([]float64, error) {
	bins := nfft/2 + 1
	if bins < 2 {
		return nil, fmt.Errorf("fft size %d yields a single frequency bin", nfft)
	}

	mag, err := Spectrogram(x, nfft, hop, 1.0)
	if err != nil {
		return nil, err
	}
	nyquist := float64(sampleRate) / 2.0
	freqs := make([]float64, bins)
	for k := range freqs {
		freqs[k] = nyquist * float64(k) / float64(bins-1)
	}

	out := make([]float64, len(mag))
	for i, frame := range mag {
		var num, den float64
		for k, v := range frame {
			num += freqs[k] * v
			den += v
		}
		if den > 0 {
			out[i] = num / den
		}
	}
	return out, nil
}
