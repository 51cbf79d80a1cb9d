package loader

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
)

// loadFLAC decodes FLAC via mewkiz/flac, frame by frame.
func loadFLAC(r io.Reader) (*Clip, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing FLAC stream: %v", ErrInvalidFile, err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	if channels < 1 {
		return nil, fmt.Errorf("%w: FLAC stream reports %d channels", ErrInvalidFile, channels)
	}
	scale := 1.0 / float64(int64(1)<<(info.BitsPerSample-1))

	var interleaved []float64
	for {
		f, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: decoding FLAC frame: %v", ErrInvalidFile, err)
		}

		n := len(f.Subframes[0].Samples)
		for i := range n {
			for ch := range channels {
				interleaved = append(interleaved, float64(f.Subframes[ch].Samples[i])*scale)
			}
		}
	}

	return &Clip{
		Samples:    downmix(interleaved, channels),
		SampleRate: int(info.SampleRate),
		Channels:   channels,
	}, nil
}
