package reference

import "math"

func hzToMel(f float64, htk bool) float64 {
	if htk {
		return 2595.0 * math.Log10(1.0+f/700.0)
	}
	// Slaney: linear below 1 kHz, logarithmic above.
	fSp := 200.0 / 3.0
	minLogHz := 1000.0
	minLogMel := minLogHz / fSp
	logStep := math.Log(6.4) / 27.0
	if f >= minLogHz {
		return minLogMel + math.Log(f/minLogHz)/logStep
	}
	return f / fSp
}

func melToHz(m float64, htk bool) float64 {
	if htk {
		return 700.0 * (math.Pow(10.0, m/2595.0) - 1.0)
	}
	fSp := 200.0 / 3.0
	minLogHz := 1000.0
	minLogMel := minLogHz / fSp
	logStep := math.Log(6.4) / 27.0
	if m >= minLogMel {
		return minLogHz * math.Exp(logStep*(m-minLogMel))
	}
	return fSp * m
}

// MelFilterbank builds an nMels × (nfft/2+1) triangular filterbank the way
// librosa.filters.mel does, via ramp differences rather than per-bin
// min/max comparisons.
func MelFilterbank(sampleRate, nfft, nMels int, fMin, fMax float64, htk, slaneyNorm bool) [][]float64 {
	bins := nfft/2 + 1
	nyquist := float64(sampleRate) / 2.0
	if fMax == 0 {
		fMax = nyquist
	}

	fftFreqs := make([]float64, bins)
	for k := range fftFreqs {
		fftFreqs[k] = nyquist * float64(k) / float64(bins-1)
	}

	melMin := hzToMel(fMin, htk)
	melMax := hzToMel(fMax, htk)
	melPts := make([]float64, nMels+2)
	for i := range melPts {
		mel := melMin + (melMax-melMin)*float64(i)/float64(nMels+1)
		melPts[i] = melToHz(mel, htk)
	}

	// fdiff[i] = melPts[i+1] - melPts[i]
	fdiff := make([]float64, nMels+1)
	for i := range fdiff {
		fdiff[i] = melPts[i+1] - melPts[i]
	}

	weights := make([][]float64, nMels)
	for m := range nMels {
		row := make([]float64, bins)
		for k, f := range fftFreqs {
			lower := -(melPts[m] - f) / fdiff[m]
			upper := (melPts[m+2] - f) / fdiff[m+1]
			w := math.Min(lower, upper)
			if w > 0 {
				row[k] = w
			}
		}
		if slaneyNorm {
			enorm := 2.0 / (melPts[m+2] - melPts[m])
			for k := range row {
				row[k] *= enorm
			}
		}
		weights[m] = row
	}
	return weights
}

// MelSpectrogram computes a frames × nMels mel power spectrogram of x.
func MelSpectrogram(x []float64, sampleRate, nfft, hop, nMels int, htk, slaneyNorm bool) ([][]float64, error) {
	spec, err := Spectrogram(x, nfft, hop, 2.0)
	if err != nil {
		return nil, err
	}
	fb := MelFilterbank(sampleRate, nfft, nMels, 0, 0, htk, slaneyNorm)
	return ApplyFilterbank(spec, fb), nil
}

// ApplyFilterbank projects a frames × bins spectrogram onto an
// nMels × bins filterbank.
func ApplyFilterbank(spec, fb [][]float64) [][]float64 {
	out := make([][]float64, len(spec))
	for i, frame := range spec {
		row := make([]float64, len(fb))
		for m, filt := range fb {
			var acc float64
			for k, w := range filt {
				acc += w * frame[k]
			}
			row[m] = acc
		}
		out[i] = row
	}
	return out
}
