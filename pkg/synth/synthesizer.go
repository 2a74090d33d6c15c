/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: synthesizer.go
Description: The synthesizer. Runs the generators in priority order, validates the
flattened candidate list and returns the first separating pattern, falling back to an
exact literal or the universal pattern when nothing separates the sets.
*/

package synth

import (
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Fallback sources recorded in Result.Source
const (
	SourceEmpty     = "empty"
	SourceLiteral   = "literal-fallback"
	SourceUniversal = "universal-fallback"
)

// Synthesizer infers anchored patterns from example sets.
// It holds no per-run state and is safe for concurrent use.
type Synthesizer struct {
	config     *Config
	generators []Generator
	logger     *logrus.Logger
}

// NewSynthesizer creates a synthesizer; a nil config means DefaultConfig()
func NewSynthesizer(config *Config) (*Synthesizer, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Synthesizer{
		config:     config,
		generators: DefaultGenerators(config),
		logger:     logger,
	}, nil
}

// Synthesize returns the pattern for valid and invalid using the default configuration
func Synthesize(valid, invalid []string) string {
	s, err := NewSynthesizer(nil)
	if err != nil {
		// DefaultConfig always validates
		panic(err)
	}
	return s.Synthesize(valid, invalid).Pattern
}

// Generators returns the generators in the order they are consulted
func (s *Synthesizer) Generators() []Generator {
	return s.generators
}

// Candidates returns every proposed candidate in priority order, duplicates included.
// Without counter-examples every template condition holds vacuously, so none are proposed.
func (s *Synthesizer) Candidates(valid, invalid []string) []Candidate {
	if len(valid) == 0 || len(invalid) == 0 {
		return nil
	}

	var candidates []Candidate
	for _, g := range s.generators {
		for _, pattern := range g.Generate(valid, invalid) {
			candidates = append(candidates, Candidate{Pattern: pattern, Generator: g.Name()})
		}
	}
	return candidates
}

// Synthesize runs one synthesis and returns the winning pattern with its trace
func (s *Synthesizer) Synthesize(valid, invalid []string) *Result {
	start := time.Now()
	result := &Result{ID: uuid.New().String()}
	log := s.logger.WithField("run_id", result.ID)

	defer func() {
		result.Duration = time.Since(start)
		log.WithFields(logrus.Fields{
			"pattern":  result.Pattern,
			"kind":     result.Kind,
			"source":   result.Source,
			"duration": result.Duration,
		}).Debug("Synthesis finished")
	}()

	if len(valid) == 0 {
		result.Pattern, result.Kind, result.Source = EmptyPattern, KindEmpty, SourceEmpty
		return result
	}

	candidates := s.Candidates(valid, invalid)
	log.WithFields(logrus.Fields{
		"valid":      len(valid),
		"invalid":    len(invalid),
		"candidates": len(candidates),
	}).Debug("Candidates generated")

	var winner int
	if s.config.Workers > 1 {
		result.Candidates, winner = s.evaluateParallel(candidates, valid, invalid)
	} else {
		result.Candidates, winner = s.evaluate(candidates, valid, invalid)
	}

	for _, o := range result.Candidates {
		log.WithFields(logrus.Fields{
			"generator": o.Generator,
			"pattern":   o.Pattern,
			"outcome":   o.Outcome,
		}).Debug("Candidate evaluated")
	}

	switch {
	case winner >= 0:
		result.Pattern = candidates[winner].Pattern
		result.Kind = KindCandidate
		result.Source = candidates[winner].Generator
	case len(valid) == 1 && utf8.RuneCountInString(valid[0]) <= s.config.MaxLiteralLength:
		result.Pattern, result.Kind, result.Source = literalPattern(valid[0]), KindLiteral, SourceLiteral
	default:
		result.Pattern, result.Kind, result.Source = UniversalPattern, KindUniversal, SourceUniversal
		log.Debug("No discriminating pattern found, using universal fallback")
	}
	return result
}

// evaluate validates candidates in order and stops at the first success
func (s *Synthesizer) evaluate(candidates []Candidate, valid, invalid []string) ([]CandidateOutcome, int) {
	outcomes := make([]CandidateOutcome, 0, len(candidates))
	for i, c := range candidates {
		outcome := s.verdict(c, valid, invalid)
		outcomes = append(outcomes, CandidateOutcome{Candidate: c, Outcome: outcome})
		if outcome == OutcomeAccepted {
			return outcomes, i
		}
	}
	return outcomes, -1
}

// evaluateParallel validates candidates on up to Workers goroutines.
// The lowest accepted index wins, so the result matches evaluate exactly.
// Candidates after the best known success are skipped.
func (s *Synthesizer) evaluateParallel(candidates []Candidate, valid, invalid []string) ([]CandidateOutcome, int) {
	verdicts := make([]Outcome, len(candidates))

	var best atomic.Int64
	best.Store(int64(len(candidates)))

	var g errgroup.Group
	g.SetLimit(s.config.Workers)
	for i, c := range candidates {
		if int64(i) > best.Load() {
			break
		}
		i, c := i, c
		g.Go(func() error {
			if int64(i) > best.Load() {
				return nil
			}
			verdicts[i] = s.verdict(c, valid, invalid)
			if verdicts[i] != OutcomeAccepted {
				return nil
			}
			for {
				cur := best.Load()
				if int64(i) >= cur || best.CompareAndSwap(cur, int64(i)) {
					return nil
				}
			}
		})
	}
	_ = g.Wait()

	outcomes := make([]CandidateOutcome, 0, len(candidates))
	for i, c := range candidates {
		if verdicts[i] == "" {
			break
		}
		outcomes = append(outcomes, CandidateOutcome{Candidate: c, Outcome: verdicts[i]})
		if verdicts[i] == OutcomeAccepted {
			return outcomes, i
		}
	}
	return outcomes, -1
}

// verdict applies the length budget, then the validator
func (s *Synthesizer) verdict(c Candidate, valid, invalid []string) Outcome {
	if len(c.Pattern) > s.config.MaxPatternLength {
		return OutcomeOverBudget
	}
	if Validate(c.Pattern, valid, invalid) {
		return OutcomeAccepted
	}
	return OutcomeRejected
}
