// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// ExtractionConfig settings about pulling DNA out of generator output
type ExtractionConfig struct {
	// the minimum length of a nucleotide run for it to be kept
	MinLength int `mapstructure:"min-length"`
}

// AnnotationConfig settings for the feature scan
type AnnotationConfig struct {
	// the minimum ORF span, in bp, to report
	ORFMinLength int `mapstructure:"orf-min-length"`

	// the maximum number of ORFs to include among the annotations
	// (ORF calls are the least specific annotations)
	ORFLimit int `mapstructure:"orf-limit"`
}

// GenerationConfig is the sampling settings forwarded to the model
type GenerationConfig struct {
	// the maximum number of generated tokens; one token per bp
	MaxLength int `mapstructure:"max-length"`

	// sampling temperature
	Temperature float64 `mapstructure:"temperature"`

	// top-k sampling cutoff
	TopK int `mapstructure:"top-k"`

	// nucleus sampling cutoff
	TopP float64 `mapstructure:"top-p"`

	// penalty against repeated tokens
	RepetitionPenalty float64 `mapstructure:"repetition-penalty"`

	// block exact repeats of this n-gram size
	NoRepeatNGram int `mapstructure:"no-repeat-ngram"`
}

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml and those
// available from the command line
type Config struct {
	// path to a vocab.json file; empty means the built-in vocabulary
	Vocab string `mapstructure:"vocab"`

	// extraction settings
	Extraction ExtractionConfig `mapstructure:"extraction"`

	// annotation settings
	Annotation AnnotationConfig `mapstructure:"annotation"`

	// generation settings
	Generation GenerationConfig `mapstructure:"generation"`
}

// setDefaults registers every setting's fallback value with viper
func setDefaults() {
	viper.SetDefault("extraction.min-length", 100)
	viper.SetDefault("annotation.orf-min-length", 300)
	viper.SetDefault("annotation.orf-limit", 5)
	viper.SetDefault("generation.max-length", 2048)
	viper.SetDefault("generation.temperature", 0.85)
	viper.SetDefault("generation.top-k", 50)
	viper.SetDefault("generation.top-p", 0.95)
	viper.SetDefault("generation.repetition-penalty", 1.15)
	viper.SetDefault("generation.no-repeat-ngram", 15)
}

// New returns a new Config struct populated by Viper settings
// (either from the local settings.yaml) and/or command line arguments
func New() *Config {
	setDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}
