/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: validator.go
Description: Validation of candidate patterns against example sets. A candidate passes
only when it fully matches every valid string and fully matches no invalid string.
*/

package synth

import (
	"fmt"
	"regexp"
	"regexp/syntax"
)

// compileFull compiles pattern so that it can only match a whole subject.
// The pattern is parsed on its own first so a stray ")" cannot escape the wrapping group.
func compileFull(pattern string) (*regexp.Regexp, error) {
	if _, err := syntax.Parse(pattern, syntax.Perl); err != nil {
		return nil, err
	}
	return regexp.Compile(`^(?:` + pattern + `)$`)
}

// Validate reports whether pattern separates valid from invalid.
// A pattern that does not compile is simply not a separator.
func Validate(pattern string, valid, invalid []string) bool {
	re, err := compileFull(pattern)
	if err != nil {
		return false
	}
	for _, s := range valid {
		if !re.MatchString(s) {
			return false
		}
	}
	for _, s := range invalid {
		if re.MatchString(s) {
			return false
		}
	}
	return true
}

// Diagnosis lists every example a pattern gets wrong
type Diagnosis struct {
	Pattern        string   `json:"pattern"`
	MissedValid    []string `json:"missed_valid"`
	MatchedInvalid []string `json:"matched_invalid"`
}

// Separates reports whether the diagnosed pattern made no mistakes
func (d *Diagnosis) Separates() bool {
	return len(d.MissedValid) == 0 && len(d.MatchedInvalid) == 0
}

// Diagnose checks pattern against both sets without short-circuiting.
// Unlike Validate it surfaces compile errors to the caller.
func Diagnose(pattern string, valid, invalid []string) (*Diagnosis, error) {
	re, err := compileFull(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern %q: %w", pattern, err)
	}

	d := &Diagnosis{Pattern: pattern}
	for _, s := range valid {
		if !re.MatchString(s) {
			d.MissedValid = append(d.MissedValid, s)
		}
	}
	for _, s := range invalid {
		if re.MatchString(s) {
			d.MatchedInvalid = append(d.MatchedInvalid, s)
		}
	}
	return d, nil
}
