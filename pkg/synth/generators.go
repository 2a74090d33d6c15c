/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generators.go
Description: Generator interface and the fixed priority order of template generators.
Generators are pure: they look at the example sets and propose anchored candidates,
they never decide whether a candidate is correct.
*/

package synth

import (
	"strings"
	"unicode/utf8"
)

// Generator proposes candidate patterns from one heuristic family
type Generator interface {
	// Generate returns anchored candidates in the generator's preferred order.
	Generate(valid, invalid []string) []string
	// Name returns the short identifier used in traces and logs.
	Name() string
	// Description returns a one-line human readable summary.
	Description() string
}

// DefaultGenerators returns the generators in priority order:
// character class, position, structural, content, length.
func DefaultGenerators(cfg *Config) []Generator {
	lengthRange := false
	if cfg != nil {
		lengthRange = cfg.LengthRange
	}
	return []Generator{
		NewCharClassGenerator(),
		NewPositionGenerator(),
		NewStructuralGenerator(),
		NewContentGenerator(),
		NewLengthGenerator(lengthRange),
	}
}

// allOf reports whether pred holds for every string (vacuously true for none)
func allOf(strs []string, pred func(string) bool) bool {
	for _, s := range strs {
		if !pred(s) {
			return false
		}
	}
	return true
}

// anyOf reports whether pred holds for at least one string
func anyOf(strs []string, pred func(string) bool) bool {
	for _, s := range strs {
		if pred(s) {
			return true
		}
	}
	return false
}

// contains returns a predicate testing for r inside a string
func contains(r rune) func(string) bool {
	return func(s string) bool { return strings.ContainsRune(s, r) }
}

// firstRune and lastRune return false for the empty string
func firstRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

func lastRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r, true
}

// runeSet collects runes in first-seen order so iteration never depends on map order
type runeSet struct {
	order []rune
	seen  map[rune]struct{}
}

func newRuneSet() *runeSet {
	return &runeSet{seen: make(map[rune]struct{})}
}

func (s *runeSet) add(r rune) {
	if _, ok := s.seen[r]; ok {
		return
	}
	s.seen[r] = struct{}{}
	s.order = append(s.order, r)
}

func (s *runeSet) addAll(str string) {
	for _, r := range str {
		s.add(r)
	}
}

func (s *runeSet) has(r rune) bool {
	_, ok := s.seen[r]
	return ok
}

func (s *runeSet) len() int {
	return len(s.order)
}
