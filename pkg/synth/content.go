/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: content.go
Description: Content generator. Proposes "contains" patterns for characters exclusive to
the valid set, plus a template pass over common separator characters.
*/

package synth

// Separators checked by the template pass, in order
const Separators = "-@._:"

// ContentGenerator proposes patterns requiring a character somewhere inside the string
type ContentGenerator struct {
	separators string
}

// NewContentGenerator creates a new ContentGenerator using the default separators
func NewContentGenerator() *ContentGenerator {
	return &ContentGenerator{separators: Separators}
}

// Generate runs the exclusive-character pass, then the separator pass.
// The two passes overlap on purpose; the orchestrator may test a pattern shape twice.
func (g *ContentGenerator) Generate(valid, invalid []string) []string {
	var candidates []string

	validChars := newRuneSet()
	for _, s := range valid {
		validChars.addAll(s)
	}
	invalidChars := newRuneSet()
	for _, s := range invalid {
		invalidChars.addAll(s)
	}

	for _, r := range validChars.order {
		if invalidChars.has(r) || !allOf(valid, contains(r)) {
			continue
		}
		c := bracket(r)
		candidates = append(candidates, anchor(".+", c, ".+"), anchor(".*", c, ".*"))
	}

	for _, sep := range g.separators {
		if allOf(valid, contains(sep)) && !anyOf(invalid, contains(sep)) {
			candidates = append(candidates, anchor(".+", escapeLiteral(string(sep)), ".+"))
		}
	}

	return candidates
}

func (g *ContentGenerator) Name() string { return "content" }

func (g *ContentGenerator) Description() string {
	return "Characters present in every valid string and absent from all invalid strings"
}
