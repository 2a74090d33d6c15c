/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: position.go
Description: Position generator. Proposes "starts with" and "ends with" patterns when
every valid string shares one first or last character that no invalid string shares.
*/

package synth

// PositionGenerator proposes fixed first/last character patterns
type PositionGenerator struct{}

// NewPositionGenerator creates a new PositionGenerator
func NewPositionGenerator() *PositionGenerator {
	return &PositionGenerator{}
}

// Generate emits the start pair before the end pair, each as "≥1 more" then "≥0 more".
func (g *PositionGenerator) Generate(valid, invalid []string) []string {
	var candidates []string

	if r, ok := sharedEdge(valid, invalid, firstRune); ok {
		c := bracket(r)
		candidates = append(candidates, anchor(c, ".+"), anchor(c, ".*"))
	}
	if r, ok := sharedEdge(valid, invalid, lastRune); ok {
		c := bracket(r)
		candidates = append(candidates, anchor(".+", c), anchor(".*", c))
	}

	return candidates
}

func (g *PositionGenerator) Name() string { return "position" }

func (g *PositionGenerator) Description() string {
	return "Literal first or last character shared by all valid strings and no invalid string"
}

// sharedEdge returns the single edge rune of the non-empty valid strings,
// provided no invalid string has the same rune at that edge.
func sharedEdge(valid, invalid []string, edge func(string) (rune, bool)) (rune, bool) {
	edges := newRuneSet()
	for _, s := range valid {
		if r, ok := edge(s); ok {
			edges.add(r)
		}
	}
	if edges.len() != 1 {
		return 0, false
	}

	r := edges.order[0]
	for _, s := range invalid {
		if e, ok := edge(s); ok && e == r {
			return 0, false
		}
	}
	return r, true
}
