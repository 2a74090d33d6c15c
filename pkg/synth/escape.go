/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: escape.go
Description: Pattern formatting helpers. All literal escaping and bracket construction
for generated candidates goes through this file.
*/

package synth

import (
	"regexp"
	"strings"
)

// escapeLiteral escapes every metacharacter in s for use outside a bracket expression
func escapeLiteral(s string) string {
	return regexp.QuoteMeta(s)
}

// bracket returns a one-character bracket expression matching r literally.
// A hyphen as the first member of a bracket is a literal, so it is left bare.
func bracket(r rune) string {
	if r == '-' {
		return "[-]"
	}
	return "[" + regexp.QuoteMeta(string(r)) + "]"
}

// anchor wraps body in start and end anchors
func anchor(body ...string) string {
	var b strings.Builder
	b.WriteByte('^')
	for _, part := range body {
		b.WriteString(part)
	}
	b.WriteByte('$')
	return b.String()
}

// literalPattern matches exactly s and nothing else
func literalPattern(s string) string {
	return anchor(escapeLiteral(s))
}
