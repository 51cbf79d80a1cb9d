package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	spectral "github.com/tphakala/go-audio-spectral"
	"github.com/tphakala/go-audio-spectral/loader"
)

var (
	flagNFFT      int
	flagHop       int
	flagWinLength int
	flagPower     float64
	flagNMels     int
	flagNMFCC     int
	flagMelScale  string
	flagMelNorm   string
	flagFMin      float64
	flagFMax      float64
	flagDB        bool
	flagTopDB     float64
)

func init() {
	for _, cmd := range []*cobra.Command{spectrogramCmd, melCmd, mfccCmd, centroidCmd} {
		cmd.Flags().IntVar(&flagNFFT, "nfft", 400, "FFT size")
		cmd.Flags().IntVar(&flagHop, "hop", 0, "hop length (default nfft/4)")
		cmd.Flags().IntVar(&flagWinLength, "win-length", 0, "window length (default nfft)")
		rootCmd.AddCommand(cmd)
	}

	spectrogramCmd.Flags().Float64Var(&flagPower, "power", 2.0, "magnitude exponent (1=magnitude, 2=power)")
	spectrogramCmd.Flags().BoolVar(&flagDB, "db", false, "convert output to decibels")
	spectrogramCmd.Flags().Float64Var(&flagTopDB, "top-db", spectral.DefaultTopDB, "dB dynamic range clamp (0 disables)")

	for _, cmd := range []*cobra.Command{melCmd, mfccCmd} {
		cmd.Flags().IntVar(&flagNMels, "n-mels", 128, "number of mel bands")
		cmd.Flags().Float64Var(&flagFMin, "fmin", 0, "lowest filterbank frequency in Hz")
		cmd.Flags().Float64Var(&flagFMax, "fmax", 0, "highest filterbank frequency in Hz (default Nyquist)")
	}
	melCmd.Flags().StringVar(&flagMelScale, "mel-scale", "htk", "mel formula (htk, slaney)")
	melCmd.Flags().StringVar(&flagMelNorm, "mel-norm", "", "filterbank normalization (slaney or empty)")
	melCmd.Flags().BoolVar(&flagDB, "db", false, "convert output to decibels")
	melCmd.Flags().Float64Var(&flagTopDB, "top-db", spectral.DefaultTopDB, "dB dynamic range clamp (0 disables)")

	mfccCmd.Flags().IntVar(&flagNMFCC, "n-mfcc", 40, "number of cepstral coefficients")
}

// loadInput decodes the single positional argument into a mono clip.
func loadInput(args []string) (*loader.Clip, error) {
	clip, err := loader.Load(args[0])
	if err != nil {
		return nil, err
	}
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "%s: %d Hz, %d channel(s), %.2fs\n",
			args[0], clip.SampleRate, clip.Channels, clip.Duration())
	}
	return clip, nil
}

var spectrogramCmd = &cobra.Command{
	Use:   "spectrogram <input>",
	Short: "Compute a power or magnitude spectrogram",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clip, err := loadInput(args)
		if err != nil {
			return err
		}

		s, err := spectral.NewSpectrogram(&spectral.SpectrogramConfig{
			NFFT:      flagNFFT,
			HopLength: flagHop,
			WinLength: flagWinLength,
			Power:     flagPower,
		})
		if err != nil {
			return err
		}
		data, err := s.Compute(clip.Samples)
		if err != nil {
			return err
		}
		if flagDB {
			data, err = toDB(data, flagPower)
			if err != nil {
				return err
			}
		}

		return writeResult(&featureResult{
			Input:      args[0],
			Transform:  "spectrogram",
			SampleRate: clip.SampleRate,
			NumFrames:  len(data),
			Data:       data,
		})
	},
}

var melCmd = &cobra.Command{
	Use:   "mel <input>",
	Short: "Compute a mel spectrogram",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clip, err := loadInput(args)
		if err != nil {
			return err
		}

		m, err := spectral.NewMelSpectrogram(&spectral.MelSpectrogramConfig{
			SampleRate: clip.SampleRate,
			NFFT:       flagNFFT,
			HopLength:  flagHop,
			WinLength:  flagWinLength,
			NMels:      flagNMels,
			FMin:       flagFMin,
			FMax:       flagFMax,
			Scale:      spectral.MelScaleType(flagMelScale),
			Norm:       spectral.MelNorm(flagMelNorm),
		})
		if err != nil {
			return err
		}
		data, err := m.Compute(clip.Samples)
		if err != nil {
			return err
		}
		if flagDB {
			data, err = toDB(data, 2.0)
			if err != nil {
				return err
			}
		}

		return writeResult(&featureResult{
			Input:      args[0],
			Transform:  "mel_spectrogram",
			SampleRate: clip.SampleRate,
			NumFrames:  len(data),
			Data:       data,
		})
	},
}

var mfccCmd = &cobra.Command{
	Use:   "mfcc <input>",
	Short: "Compute mel-frequency cepstral coefficients",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clip, err := loadInput(args)
		if err != nil {
			return err
		}

		m, err := spectral.NewMFCC(&spectral.MFCCConfig{
			SampleRate: clip.SampleRate,
			NMFCC:      flagNMFCC,
			Mel: &spectral.MelSpectrogramConfig{
				SampleRate: clip.SampleRate,
				NFFT:       flagNFFT,
				HopLength:  flagHop,
				WinLength:  flagWinLength,
				NMels:      flagNMels,
				FMin:       flagFMin,
				FMax:       flagFMax,
			},
		})
		if err != nil {
			return err
		}
		data, err := m.Compute(clip.Samples)
		if err != nil {
			return err
		}

		return writeResult(&featureResult{
			Input:      args[0],
			Transform:  "mfcc",
			SampleRate: clip.SampleRate,
			NumFrames:  len(data),
			Data:       data,
		})
	},
}

var centroidCmd = &cobra.Command{
	Use:   "centroid <input>",
	Short: "Compute the per-frame spectral centroid in Hz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clip, err := loadInput(args)
		if err != nil {
			return err
		}

		c, err := spectral.NewSpectralCentroid(&spectral.SpectralCentroidConfig{
			SampleRate: clip.SampleRate,
			NFFT:       flagNFFT,
			HopLength:  flagHop,
			WinLength:  flagWinLength,
		})
		if err != nil {
			return err
		}
		centroid, err := c.Compute(clip.Samples)
		if err != nil {
			return err
		}

		return writeResult(&featureResult{
			Input:      args[0],
			Transform:  "spectral_centroid",
			SampleRate: clip.SampleRate,
			NumFrames:  len(centroid),
			Data:       vectorResult(centroid),
		})
	},
}

// toDB converts spec to decibels; power 1 spectra use the 20·log10 scale.
func toDB(spec [][]float64, power float64) ([][]float64, error) {
	scale := spectral.DBPower
	if power == 1.0 {
		scale = spectral.DBMagnitude
	}
	db, err := spectral.NewAmplitudeToDB(&spectral.AmplitudeToDBConfig{
		Scale: scale,
		TopDB: flagTopDB,
	})
	if err != nil {
		return nil, err
	}
	return db.Apply(spec), nil
}
