// Command audio-features extracts spectral features from audio files.
//
// Usage:
//
//	audio-features spectrogram input.wav
//	audio-features mel --n-mels 64 --mel-scale slaney input.flac
//	audio-features mfcc --n-mfcc 13 -o features.json input.mp3
//	audio-features centroid --format csv input.ogg
//
// Supported input formats are WAV, MP3, Ogg Vorbis and FLAC. Output is JSON
// or CSV on stdout or a file. Defaults can be set in an audio-features.yaml
// config file or AUDIO_FEATURES_* environment variables.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
