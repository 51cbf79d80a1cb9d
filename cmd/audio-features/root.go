package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix namespaces the tool's environment variables.
const envPrefix = "AUDIO_FEATURES"

var (
	configFile   string
	outputPath   string
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "audio-features",
	Short: "Extract spectral features from audio files",
	Long: `audio-features decodes WAV, MP3, Ogg Vorbis and FLAC files and extracts
spectral features: power spectrograms, mel spectrograms, MFCCs and
per-frame spectral centroids. Results are written as JSON or CSV.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default audio-features.yaml in . or $HOME/.config/audio-features)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "out", "o", "",
		"output file (default stdout)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "json",
		"output format (json, csv)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads the config file and environment variables.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home + "/.config/audio-features")
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("audio-features")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "using config file: %s\n", viper.ConfigFileUsed())
	}
}

func setDefaults() {
	viper.SetDefault("format", "json")
	viper.SetDefault("verbose", false)

	viper.SetDefault("spectrogram.nfft", 400)
	viper.SetDefault("spectrogram.power", 2.0)
	viper.SetDefault("mel.n_mels", 128)
	viper.SetDefault("mfcc.n_mfcc", 40)
	viper.SetDefault("db.top_db", 80.0)
}
