/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: synthesize.go
Description: The synth command. Loads examples, runs the synthesizer and prints the
pattern, optionally with the candidate trace and a JSON report.
*/

package commands

import (
	"errors"
	"fmt"

	"github.com/kleascm/regsynth/pkg/reporting"
	"github.com/kleascm/regsynth/pkg/synth"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrNoDiscriminatingPattern is returned by --strict runs that end on the universal fallback
var ErrNoDiscriminatingPattern = errors.New("no discriminating pattern found")

// RunSynthesize infers a pattern for the configured examples
func RunSynthesize(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	set, err := LoadExamples(cmd)
	if err != nil {
		return err
	}

	cfg, err := SynthConfig(logger.GetLogger())
	if err != nil {
		return err
	}
	synthesizer, err := synth.NewSynthesizer(cfg)
	if err != nil {
		return err
	}

	result := synthesizer.Synthesize(set.Valid, set.Invalid)
	logger.LogResult(result.ID, result.Pattern, string(result.Kind), result.Duration)

	out := cmd.OutOrStdout()
	quiet, _ := cmd.Flags().GetBool("quiet")
	if quiet {
		fmt.Fprintln(out, result.Pattern)
	} else {
		fmt.Fprintf(out, "🧬 %d valid / %d invalid examples\n\n", len(set.Valid), len(set.Invalid))
		fmt.Fprint(out, reporting.Summary(result))
		if trace, _ := cmd.Flags().GetBool("trace"); trace && len(result.Candidates) > 0 {
			fmt.Fprintln(out)
			fmt.Fprint(out, reporting.Trace(result))
		}
	}

	if dir := viper.GetString("report_dir"); dir != "" {
		path, err := reporting.WriteReport(dir, *set, result)
		if err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(out, "\n💾 Report saved to: %s\n", path)
		}
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict && !result.Discriminating() {
		return ErrNoDiscriminatingPattern
	}
	return nil
}
