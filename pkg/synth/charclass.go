/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: charclass.go
Description: Character-class generator. Proposes the shorthand classes \D, \d and \w
when the example sets are uniformly alphabetic, numeric or word-like.
*/

package synth

import "unicode"

// CharClassGenerator proposes whole-string character class patterns
type CharClassGenerator struct{}

// NewCharClassGenerator creates a new CharClassGenerator
func NewCharClassGenerator() *CharClassGenerator {
	return &CharClassGenerator{}
}

// Generate checks each condition independently; several may fire.
func (g *CharClassGenerator) Generate(valid, invalid []string) []string {
	var candidates []string
	if allOf(valid, isAlpha) && allOf(invalid, isNumeric) {
		candidates = append(candidates, `^\D+$`)
	}
	if allOf(valid, isNumeric) && allOf(invalid, isAlpha) {
		candidates = append(candidates, `^\d+$`)
	}
	if allOf(valid, isWord) {
		candidates = append(candidates, `^\w+$`)
	}
	return candidates
}

func (g *CharClassGenerator) Name() string { return "charclass" }

func (g *CharClassGenerator) Description() string {
	return "Whole-string character classes (non-digit, digit, word) for uniformly typed examples"
}

// isAlpha, isNumeric and isWord are false for the empty string
func isAlpha(s string) bool {
	return s != "" && everyRune(s, unicode.IsLetter)
}

func isNumeric(s string) bool {
	return s != "" && everyRune(s, unicode.IsDigit)
}

func isWord(s string) bool {
	return s != "" && everyRune(s, func(r rune) bool {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

func everyRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}
