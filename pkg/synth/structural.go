/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: structural.go
Description: Structural generator. Proposes a fixed family of email-shaped patterns when
every valid string contains both an at-sign and a period.
*/

package synth

import "strings"

// emailShapes are tried in this order: non-digit local part, no-at bracket classes, word characters
var emailShapes = []string{
	`^\D+@\w+\.\w+$`,
	`^[^@]+@[^@]+\.[^@]+$`,
	`^\w+@\w+\.\w+$`,
}

// StructuralGenerator proposes local@domain.tld shaped patterns
type StructuralGenerator struct{}

// NewStructuralGenerator creates a new StructuralGenerator
func NewStructuralGenerator() *StructuralGenerator {
	return &StructuralGenerator{}
}

// Generate emits every shape unconditionally once the trigger holds.
// Nothing is pre-validated here, so ordering is decided by the orchestrator alone.
func (g *StructuralGenerator) Generate(valid, invalid []string) []string {
	emailLike := func(s string) bool {
		return strings.ContainsRune(s, '@') && strings.ContainsRune(s, '.')
	}
	if len(valid) == 0 || !allOf(valid, emailLike) {
		return nil
	}
	candidates := make([]string, len(emailShapes))
	copy(candidates, emailShapes)
	return candidates
}

func (g *StructuralGenerator) Name() string { return "structural" }

func (g *StructuralGenerator) Description() string {
	return "Email-shaped local@domain.tld patterns when every valid string has '@' and '.'"
}
