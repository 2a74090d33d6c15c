/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: types.go
Description: Core types for the regsynth engine. Defines example sets, candidate
patterns, per-candidate outcomes and the synthesis result returned to callers.
*/

package synth

import "time"

// Fixed patterns used by the fallback ladder.
const (
	// EmptyPattern matches only the empty string.
	EmptyPattern = `^$`
	// UniversalPattern matches any string, newlines included.
	UniversalPattern = `^(?s:.*)$`
)

// ExampleSet holds the strings a pattern must accept and the strings it must reject.
// Order is significant: generators walk both slices front to back.
type ExampleSet struct {
	Valid   []string `json:"valid" yaml:"valid"`
	Invalid []string `json:"invalid" yaml:"invalid"`
}

// Candidate is a proposed pattern together with the generator that proposed it
type Candidate struct {
	Pattern   string `json:"pattern"`
	Generator string `json:"generator"`
}

// Outcome is the verdict recorded for a single candidate
type Outcome string

const (
	OutcomeAccepted   Outcome = "accepted"
	OutcomeRejected   Outcome = "rejected"
	OutcomeOverBudget Outcome = "over_budget"
)

// CandidateOutcome pairs a candidate with its verdict
type CandidateOutcome struct {
	Candidate
	Outcome Outcome `json:"outcome"`
}

// ResultKind tells which rung of the ladder produced the pattern
type ResultKind string

const (
	KindEmpty     ResultKind = "empty"     // no valid strings
	KindCandidate ResultKind = "candidate" // a generator candidate validated
	KindLiteral   ResultKind = "literal"   // exact match of the single valid string
	KindUniversal ResultKind = "universal" // nothing discriminating was found
)

// Result is the outcome of one synthesis run
type Result struct {
	ID         string             `json:"id"`
	Pattern    string             `json:"pattern"`
	Kind       ResultKind         `json:"kind"`
	Source     string             `json:"source"`
	Candidates []CandidateOutcome `json:"candidates"`
	Duration   time.Duration      `json:"duration"`
}

// Discriminating reports whether the pattern is known to separate the example sets.
// The universal fallback accepts everything and therefore signals failure.
func (r *Result) Discriminating() bool {
	return r.Kind != KindUniversal
}
