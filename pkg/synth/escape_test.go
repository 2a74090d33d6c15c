/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: escape_test.go
Description: Tests for bracket and literal escaping helpers.
*/

package synth

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBracketHyphenStaysBare(t *testing.T) {
	assert.Equal(t, "[-]", bracket('-'))
	assert.Equal(t, `[\.]`, bracket('.'))
	assert.Equal(t, `[\]]`, bracket(']'))
	assert.Equal(t, "[a]", bracket('a'))
}

func TestBracketMatchesOnlyItsRune(t *testing.T) {
	for _, r := range `-]^\.[*+?(){}|$a9_@ é` {
		re, err := regexp.Compile("^" + bracket(r) + "$")
		require.NoError(t, err, "rune %q", r)
		assert.True(t, re.MatchString(string(r)), "rune %q", r)
		if r != 'x' {
			assert.False(t, re.MatchString("x"), "rune %q", r)
		}
	}
}

func TestLiteralPattern(t *testing.T) {
	assert.Equal(t, `^a\.b\*$`, literalPattern("a.b*"))
	assert.Equal(t, "^$", literalPattern(""))

	for _, s := range []string{"a+b", "(x)", `back\slash`, "[-]", "^$", "tab\there"} {
		re := regexp.MustCompile(literalPattern(s))
		assert.True(t, re.MatchString(s), s)
		assert.False(t, re.MatchString(s+"!"), s)
	}
}
