// Package cmd is for command line interactions with the plasmid-space application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "plasmid-space",
	Short: `Design and analyze plasmids with a token-level generative model.
Translate descriptions to condition tokens, sanitize generator output,
and annotate the resulting sequence`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	RootCmd.PersistentFlags().StringP("settings", "s", "", "path to a settings YAML file")
	RootCmd.PersistentFlags().String("vocab", "", "path to a vocab.json file (defaults to the built-in vocabulary)")

	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("vocab", RootCmd.PersistentFlags().Lookup("vocab"))

	cobra.OnInitialize(initConfig)
}

// initConfig reads the settings file into viper, if one was passed.
func initConfig() {
	settings := viper.GetString("settings")
	if settings == "" {
		return
	}

	viper.SetConfigFile(settings)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("failed to read settings file: %v", err)
	}
}
