package loader

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

// loadWAV decodes PCM WAV via go-audio/wav.
func loadWAV(r io.ReadSeeker) (*Clip, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: not a valid WAV file", ErrInvalidFile)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: decoding WAV: %v", ErrInvalidFile, err)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("%w: WAV reports %d channels", ErrInvalidFile, channels)
	}

	// Scale integer PCM to [-1, 1) by the source bit depth.
	scale := 1.0 / float64(int64(1)<<(decoder.BitDepth-1))
	interleaved := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		interleaved[i] = float64(v) * scale
	}

	return &Clip{
		Samples:    downmix(interleaved, channels),
		SampleRate: buf.Format.SampleRate,
		Channels:   channels,
	}, nil
}
