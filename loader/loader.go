// Package loader decodes audio files into mono float64 sample slices ready
// for the spectral transforms.
//
// Supported formats are WAV, MP3, Ogg Vorbis and FLAC, dispatched on file
// extension. Multi-channel audio is downmixed to mono by averaging channels;
// integer PCM is scaled to [-1, 1).
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Errors returned by the loader.
var (
	// ErrUnsupportedFormat indicates a file extension with no registered decoder.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrInvalidFile indicates a file that failed to decode.
	ErrInvalidFile = errors.New("invalid audio file")
)

// Clip is decoded audio: mono samples in [-1, 1) plus source metadata.
type Clip struct {
	// Samples holds the downmixed mono signal.
	Samples []float64

	// SampleRate in Hz.
	SampleRate int

	// Channels is the channel count of the source file before downmixing.
	Channels int
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate == 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// Load decodes the audio file at path, dispatching on its extension.
func Load(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return loadWAV(f)
	case ".mp3":
		return loadMP3(f)
	case ".ogg", ".oga":
		return loadOgg(f)
	case ".flac":
		return loadFLAC(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// downmix averages interleaved multi-channel samples into a mono signal.
func downmix(interleaved []float64, channels int) []float64 {
	if channels <= 1 {
		return interleaved
	}
	frames := len(interleaved) / channels
	out := make([]float64, frames)
	for i := range frames {
		var sum float64
		for ch := range channels {
			sum += interleaved[i*channels+ch]
		}
		out[i] = sum / float64(channels)
	}
	return out
}
