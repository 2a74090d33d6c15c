/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for regsynth. Infers an anchored regular expression
from valid and invalid examples, checks patterns against example sets and lists the
template generators.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/regsynth/cmd/regsynth/commands"
	"github.com/kleascm/regsynth/pkg/synth"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree and binds its flags to viper
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "regsynth",
		Short: "regsynth - infer a regular expression from examples",
		Long: `regsynth learns a single anchored regular expression that accepts every valid
example and rejects every invalid one. Candidates come from a fixed, ordered set of
templates; the first one that separates the examples wins.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Configuration file path")
	rootCmd.PersistentFlags().String("log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().String("log-dir", "", "Also write logs to a timestamped file in this directory")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))

	synthCmd := &cobra.Command{
		Use:   "synth",
		Short: "Synthesize a pattern from examples",
		Long: `Synthesize a pattern that fully matches every valid example and no invalid
example. Examples come from --valid/--invalid flags, an --examples file, or both.`,
		Args: cobra.NoArgs,
		RunE: commands.RunSynthesize,
	}
	addExampleFlags(synthCmd)
	synthCmd.Flags().Int("max-pattern-length", synth.DefaultMaxPatternLength, "Skip candidates longer than this")
	synthCmd.Flags().Int("max-literal-length", synth.DefaultMaxLiteralLength, "Longest single example the literal fallback accepts")
	synthCmd.Flags().Bool("length-range", false, "Also propose ^.{min,max}$ when example lengths differ")
	synthCmd.Flags().Int("workers", 1, "Validate candidates on this many goroutines")
	synthCmd.Flags().String("report-dir", "", "Write a JSON report of the run into this directory")
	synthCmd.Flags().Bool("trace", false, "Print every candidate considered")
	synthCmd.Flags().BoolP("quiet", "q", false, "Print only the pattern")
	synthCmd.Flags().Bool("strict", false, "Fail when no discriminating pattern is found")

	viper.BindPFlag("max_pattern_length", synthCmd.Flags().Lookup("max-pattern-length"))
	viper.BindPFlag("max_literal_length", synthCmd.Flags().Lookup("max-literal-length"))
	viper.BindPFlag("length_range", synthCmd.Flags().Lookup("length-range"))
	viper.BindPFlag("workers", synthCmd.Flags().Lookup("workers"))
	viper.BindPFlag("report_dir", synthCmd.Flags().Lookup("report-dir"))

	checkCmd := &cobra.Command{
		Use:   "check PATTERN",
		Short: "Check whether a pattern separates the examples",
		Long: `Check a pattern against the examples with full-string matching and list every
valid example it misses and every invalid example it accepts.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunCheck,
	}
	addExampleFlags(checkCmd)

	generatorsCmd := &cobra.Command{
		Use:   "generators",
		Short: "List template generators in priority order",
		Args:  cobra.NoArgs,
		Run:   commands.ListGenerators,
	}

	rootCmd.AddCommand(synthCmd, checkCmd, generatorsCmd)
	return rootCmd
}

// addExampleFlags registers the flags that describe an example set
func addExampleFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("valid", nil, "Valid example (repeatable)")
	cmd.Flags().StringArray("invalid", nil, "Invalid example (repeatable)")
	cmd.Flags().String("examples", "", "Example file (json, yaml, csv, txt, html)")
	cmd.Flags().String("format", "auto", "Example file format (auto, json, yaml, csv, txt, html)")
	cmd.Flags().String("valid-selector", "", "CSS selector for valid examples in HTML files")
	cmd.Flags().String("invalid-selector", "", "CSS selector for invalid examples in HTML files")
}
