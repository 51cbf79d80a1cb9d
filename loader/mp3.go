package loader

import (
	"fmt"
	"io"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// mp3Channels is fixed: go-mp3 always emits interleaved stereo.
const mp3Channels = 2

// int16Scale maps 16-bit PCM to [-1, 1).
const int16Scale = 1.0 / 32768.0

// loadMP3 decodes MP3 via go-mp3, which streams 16-bit little-endian
// interleaved stereo PCM.
func loadMP3(r io.Reader) (*Clip, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding MP3: %v", ErrInvalidFile, err)
	}

	pcm, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("%w: reading MP3 stream: %v", ErrInvalidFile, err)
	}

	samples := len(pcm) / 2
	interleaved := make([]float64, samples)
	for i := range samples {
		v := int16(uint16(pcm[2*i]) | uint16(pcm[2*i+1])<<8)
		interleaved[i] = float64(v) * int16Scale
	}

	return &Clip{
		Samples:    downmix(interleaved, mp3Channels),
		SampleRate: decoder.SampleRate(),
		Channels:   mp3Channels,
	}, nil
}
