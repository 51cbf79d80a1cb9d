package loader

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// loadOgg decodes Ogg Vorbis via jfreymuth/oggvorbis.
func loadOgg(r io.Reader) (*Clip, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding Ogg Vorbis: %v", ErrInvalidFile, err)
	}
	if format.Channels < 1 {
		return nil, fmt.Errorf("%w: Ogg stream reports %d channels", ErrInvalidFile, format.Channels)
	}

	interleaved := make([]float64, len(data))
	for i, v := range data {
		interleaved[i] = float64(v)
	}

	return &Clip{
		Samples:    downmix(interleaved, format.Channels),
		SampleRate: format.SampleRate,
		Channels:   format.Channels,
	}, nil
}
