/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: length.go
Description: Length generator. Proposes an exact-repetition pattern when every valid
string has the same length and no invalid string does.
*/

package synth

import (
	"fmt"
	"unicode/utf8"
)

// LengthGenerator proposes fixed or bounded length patterns.
// Lengths are counted in runes, matching what "." consumes.
type LengthGenerator struct {
	// Range also proposes ^.{min,max}$ when valid lengths differ
	Range bool
}

// NewLengthGenerator creates a new LengthGenerator
func NewLengthGenerator(lengthRange bool) *LengthGenerator {
	return &LengthGenerator{Range: lengthRange}
}

func (g *LengthGenerator) Generate(valid, invalid []string) []string {
	if len(valid) == 0 {
		return nil
	}

	lo, hi := utf8.RuneCountInString(valid[0]), utf8.RuneCountInString(valid[0])
	for _, s := range valid[1:] {
		n := utf8.RuneCountInString(s)
		lo = min(lo, n)
		hi = max(hi, n)
	}

	if lo == hi {
		if anyOf(invalid, func(s string) bool { return utf8.RuneCountInString(s) == lo }) {
			return nil
		}
		return []string{fmt.Sprintf(`^.{%d}$`, lo)}
	}
	if g.Range {
		return []string{fmt.Sprintf(`^.{%d,%d}$`, lo, hi)}
	}
	return nil
}

func (g *LengthGenerator) Name() string { return "length" }

func (g *LengthGenerator) Description() string {
	if g.Range {
		return "Exact shared length, or the min..max length range when lengths differ"
	}
	return "Exact length shared by all valid strings and no invalid string"
}
