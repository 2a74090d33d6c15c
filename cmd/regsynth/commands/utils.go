/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared helpers for regsynth commands: configuration loading, logging setup,
synthesizer configuration and example set assembly from flags and files.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/regsynth/pkg/examples"
	"github.com/kleascm/regsynth/pkg/logging"
	"github.com/kleascm/regsynth/pkg/synth"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	viper.SetEnvPrefix("REGSYNTH")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging builds the logger described by the log_* settings
func SetupLogging() (*logging.Logger, error) {
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    logging.LogFormat(viper.GetString("log_format")),
		OutputDir: viper.GetString("log_dir"),
		Timestamp: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger, nil
}

// SynthConfig builds the synthesizer configuration from viper settings
func SynthConfig(logger *logrus.Logger) (*synth.Config, error) {
	cfg := &synth.Config{
		MaxPatternLength: viper.GetInt("max_pattern_length"),
		MaxLiteralLength: viper.GetInt("max_literal_length"),
		LengthRange:      viper.GetBool("length_range"),
		Workers:          viper.GetInt("workers"),
		Logger:           logger,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadExamples merges the --examples file with --valid/--invalid flags.
// File examples come first so flag examples extend them.
func LoadExamples(cmd *cobra.Command) (*synth.ExampleSet, error) {
	set := &synth.ExampleSet{}

	if path, _ := cmd.Flags().GetString("examples"); path != "" {
		format, _ := cmd.Flags().GetString("format")
		validSel, _ := cmd.Flags().GetString("valid-selector")
		invalidSel, _ := cmd.Flags().GetString("invalid-selector")

		loaded, err := examples.Load(path, examples.Format(format), examples.Options{
			ValidSelector:   validSel,
			InvalidSelector: invalidSel,
		})
		if err != nil {
			return nil, err
		}
		set = loaded
	}

	valid, _ := cmd.Flags().GetStringArray("valid")
	invalid, _ := cmd.Flags().GetStringArray("invalid")
	set.Valid = append(set.Valid, valid...)
	set.Invalid = append(set.Invalid, invalid...)

	return set, nil
}
