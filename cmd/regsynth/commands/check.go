/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: check.go
Description: The check command. Reports every example a user-supplied pattern gets wrong.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/regsynth/pkg/synth"
	"github.com/spf13/cobra"
)

// RunCheck diagnoses args[0] against the configured examples
func RunCheck(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	set, err := LoadExamples(cmd)
	if err != nil {
		return err
	}

	d, err := synth.Diagnose(args[0], set.Valid, set.Invalid)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range d.MissedValid {
		fmt.Fprintf(out, "❌ missed valid:     %q\n", s)
	}
	for _, s := range d.MatchedInvalid {
		fmt.Fprintf(out, "❌ matched invalid:  %q\n", s)
	}

	if !d.Separates() {
		return fmt.Errorf("pattern %s fails %d of %d examples", d.Pattern,
			len(d.MissedValid)+len(d.MatchedInvalid), len(set.Valid)+len(set.Invalid))
	}
	fmt.Fprintf(out, "✅ %s separates %d valid / %d invalid examples\n", d.Pattern, len(set.Valid), len(set.Invalid))
	return nil
}
