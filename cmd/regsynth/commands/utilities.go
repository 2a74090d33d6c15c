/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utilities.go
Description: The generators command. Lists template generators in priority order.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/regsynth/pkg/synth"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ListGenerators prints the generators the synthesizer consults, in order
func ListGenerators(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "🧬 regsynth - Template Generators")
	fmt.Fprintln(out, "================================")
	fmt.Fprintln(out)

	cfg := synth.DefaultConfig()
	cfg.LengthRange = viper.GetBool("length_range")

	for i, g := range synth.DefaultGenerators(cfg) {
		fmt.Fprintf(out, "%d. %s\n", i+1, g.Name())
		fmt.Fprintf(out, "   %s\n", g.Description())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Fallbacks: exact literal of a single short example, then the universal pattern.")
}
